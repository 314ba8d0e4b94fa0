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

package ioc

import (
	"github.com/gotomicro/ego/core/econf"

	"github.com/hirebook/hirebook/internal/pkg/snowflake"
)

// 两类账号：雇主和求职者
const roleCount = 2

func InitAccountIDGenerator() snowflake.AccountIDGenerator {
	type Config struct {
		NodeId uint `yaml:"nodeId"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("snowflake", &cfg); err != nil {
		panic(err)
	}
	gen, err := snowflake.NewRoleAwareGenerator(cfg.NodeId, roleCount)
	if err != nil {
		panic(err)
	}
	return gen
}
