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

package domain

// Resume 求职者的一份在线简历。一个账号可以有多份
type Resume struct {
	Id  int64
	Uid int64
	// 期望职位，也当简历的展示标题用
	DesiredJobTitle string
	JobType         string
	Categories      []string
	PersonalSummary string
	Location        string
	// 上传的简历附件 URL，没传就是空串
	FileURL      string
	CustomFields map[string]any
	Utime        int64
}
