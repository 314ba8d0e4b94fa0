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

package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	sts "github.com/tencentyun/qcloud-cos-sts-sdk/go"
)

func TestNewCOSTmpAuthCode(t *testing.T) {
	t.Parallel()
	res := &sts.CredentialResult{
		StartTime:   1716000000,
		ExpiredTime: 1716003600,
		Credentials: &sts.Credentials{
			TmpSecretID:  "tmp-id",
			TmpSecretKey: "tmp-key",
			SessionToken: "token",
		},
	}
	assert.Equal(t, COSTmpAuthCode{
		SecretId:     "tmp-id",
		SecretKey:    "tmp-key",
		SessionToken: "token",
		StartTime:    1716000000,
		ExpiredTime:  1716003600,
	}, newCOSTmpAuthCode(res))
}
