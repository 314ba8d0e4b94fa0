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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
)

type ResumeDAO interface {
	Create(ctx context.Context, r Resume) (int64, error)
	FindById(ctx context.Context, id int64) (Resume, error)
	ListByUid(ctx context.Context, uid int64) ([]Resume, error)
	Delete(ctx context.Context, id, uid int64) error
}

type ResumeGORMDAO struct {
	db *egorm.Component
}

func NewResumeGORMDAO(db *egorm.Component) ResumeDAO {
	return &ResumeGORMDAO{db: db}
}

func (dao *ResumeGORMDAO) Create(ctx context.Context, r Resume) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	err := dao.db.WithContext(ctx).Create(&r).Error
	return r.Id, err
}

func (dao *ResumeGORMDAO) FindById(ctx context.Context, id int64) (Resume, error) {
	var r Resume
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	return r, err
}

func (dao *ResumeGORMDAO) ListByUid(ctx context.Context, uid int64) ([]Resume, error) {
	var res []Resume
	err := dao.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("utime DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (dao *ResumeGORMDAO) Delete(ctx context.Context, id, uid int64) error {
	// 带上 uid 条件，别人的简历删不掉
	return dao.db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Delete(&Resume{}).Error
}

type Resume struct {
	Id              int64  `gorm:"primaryKey,autoIncrement"`
	Uid             int64  `gorm:"index"`
	DesiredJobTitle string `gorm:"type:varchar(256)"`
	JobType         string `gorm:"type:varchar(64)"`
	// 换行分隔的分类列表，和字段定义里的 Options 一个存法
	Categories      string `gorm:"type:varchar(1024)"`
	PersonalSummary string `gorm:"type:text"`
	Location        string `gorm:"type:varchar(256)"`
	FileUrl         string `gorm:"type:varchar(1024)"`
	CustomFields    string `gorm:"type:text"`
	Ctime           int64
	Utime           int64
}

func (Resume) TableName() string {
	return "resumes"
}
