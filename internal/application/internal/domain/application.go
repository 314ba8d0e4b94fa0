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

type ApplicationStatus uint8

const (
	// ApplicationStatusSubmitted 投递成功，等雇主处理
	ApplicationStatusSubmitted ApplicationStatus = 1
	// ApplicationStatusViewed 雇主看过了
	ApplicationStatusViewed ApplicationStatus = 2
	// ApplicationStatusRejected 雇主拒了
	ApplicationStatusRejected ApplicationStatus = 3
)

func (s ApplicationStatus) ToUint8() uint8 {
	return uint8(s)
}

// Application 一次职位投递
type Application struct {
	Id int64
	// SN 投递流水号，对外展示用
	SN          string
	JobId       int64
	JobSeekerId int64
	FullName    string
	Email       string
	Phone       string
	// 附件简历 URL，装配阶段上传好的
	ResumeURL    string
	CustomFields map[string]any
	Status       ApplicationStatus
	Utime        int64
}
