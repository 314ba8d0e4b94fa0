// Copyright 2024 hirebook
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

// Role 账号 ID 的业务分区，从 ID 本身就能看出来是雇主号还是求职者号
type Role uint

const (
	RoleEmployer  Role = 0
	RoleJobSeeker Role = 1
)

type AccountIDGenerator interface {
	Generate(role Role) (ID, error)
}

// +---------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit Role   | 5 Bit NodeID  |   12 Bit Sequence ID |
// +---------------------------------------------------------------------------------------+

type RoleAwareGenerator struct {
	// 键为 Role
	nodes syncx.Map[Role, *snowflake.Node]
}

const (
	maxNode uint = 31
	maxRole uint = 31
)

var (
	ErrExceedNode  = errors.New("node超出限制")
	ErrExceedRole  = errors.New("role超出限制")
	ErrUnknownRole = errors.New("未知的role")
)

// NewRoleAwareGenerator nodeId 是部署节点编号，roles 是业务分区数量，都从 0 开始，最多 32 个
func NewRoleAwareGenerator(nodeId uint, roles uint) (*RoleAwareGenerator, error) {
	if nodeId > maxNode {
		return nil, fmt.Errorf("%w", ErrExceedNode)
	}
	if roles > maxRole+1 {
		return nil, fmt.Errorf("%w", ErrExceedRole)
	}
	g := &RoleAwareGenerator{}
	for i := 0; i < int(roles); i++ {
		nid := (i << 5) | int(nodeId)
		n, err := snowflake.NewNode(int64(nid))
		if err != nil {
			return nil, err
		}
		g.nodes.Store(Role(i), n)
	}
	return g, nil
}

type ID int64

func (g *RoleAwareGenerator) Generate(role Role) (ID, error) {
	n, ok := g.nodes.Load(role)
	if !ok {
		return 0, fmt.Errorf("%w", ErrUnknownRole)
	}
	return ID(n.Generate()), nil
}

func (f ID) Role() Role {
	node := snowflake.ID(f).Node()
	return Role(node >> 5)
}

func (f ID) Int64() int64 {
	return int64(f)
}
