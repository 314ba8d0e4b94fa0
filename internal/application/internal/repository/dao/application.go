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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
)

var ErrDuplicateApplication = errors.New("重复投递")

// 唯一索引冲突
const uniqueIndexErrNo uint16 = 1062

type ApplicationDAO interface {
	Create(ctx context.Context, app Application) (int64, error)
	FindBySN(ctx context.Context, sn string) (Application, error)
	ListByJobSeeker(ctx context.Context, jobSeekerId int64) ([]Application, error)
	ListByJob(ctx context.Context, jobId int64, offset, limit int) ([]Application, error)
	UpdateStatus(ctx context.Context, sn string, status uint8) error
}

type ApplicationGORMDAO struct {
	db *egorm.Component
}

func NewApplicationGORMDAO(db *egorm.Component) ApplicationDAO {
	return &ApplicationGORMDAO{db: db}
}

func (dao *ApplicationGORMDAO) Create(ctx context.Context, app Application) (int64, error) {
	now := time.Now().UnixMilli()
	app.Ctime = now
	app.Utime = now
	err := dao.db.WithContext(ctx).Create(&app).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
		return 0, ErrDuplicateApplication
	}
	return app.Id, err
}

func (dao *ApplicationGORMDAO) FindBySN(ctx context.Context, sn string) (Application, error) {
	var app Application
	err := dao.db.WithContext(ctx).Where("sn = ?", sn).First(&app).Error
	return app, err
}

func (dao *ApplicationGORMDAO) ListByJobSeeker(ctx context.Context, jobSeekerId int64) ([]Application, error) {
	var res []Application
	err := dao.db.WithContext(ctx).
		Where("job_seeker_id = ?", jobSeekerId).
		Order("utime DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (dao *ApplicationGORMDAO) ListByJob(ctx context.Context, jobId int64, offset, limit int) ([]Application, error) {
	var res []Application
	err := dao.db.WithContext(ctx).
		Where("job_id = ?", jobId).
		Order("utime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (dao *ApplicationGORMDAO) UpdateStatus(ctx context.Context, sn string, status uint8) error {
	return dao.db.WithContext(ctx).Model(&Application{}).
		Where("sn = ?", sn).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

type Application struct {
	Id int64  `gorm:"primaryKey,autoIncrement"`
	SN string `gorm:"column:sn;type:varchar(64);uniqueIndex"`
	// 一个求职者对一个职位只能投一次
	JobId       int64  `gorm:"uniqueIndex:uk_job_seeker"`
	JobSeekerId int64  `gorm:"uniqueIndex:uk_job_seeker;index"`
	FullName    string `gorm:"type:varchar(256)"`
	Email       string `gorm:"type:varchar(256)"`
	Phone       string `gorm:"type:varchar(64)"`
	ResumeUrl   string `gorm:"type:varchar(1024)"`
	// 动态字段装配载荷的 JSON
	CustomFields string `gorm:"type:text"`
	Status       uint8  `gorm:"type:tinyint unsigned;not null;default:1"`
	Ctime        int64
	Utime        int64
}

func (Application) TableName() string {
	return "applications"
}
