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

var ErrDuplicateEmail = errors.New("邮箱冲突")

const uniqueIndexErrNo uint16 = 1062

type JobSeekerDAO interface {
	Create(ctx context.Context, seeker JobSeeker) (int64, error)
	FindById(ctx context.Context, id int64) (JobSeeker, error)
	// ListSearchable 人才库：只包含勾了允许被找到的求职者
	ListSearchable(ctx context.Context, offset, limit int) ([]JobSeeker, error)
}

type JobSeekerGORMDAO struct {
	db *egorm.Component
}

func NewJobSeekerGORMDAO(db *egorm.Component) JobSeekerDAO {
	return &JobSeekerGORMDAO{db: db}
}

func (dao *JobSeekerGORMDAO) Create(ctx context.Context, seeker JobSeeker) (int64, error) {
	now := time.Now().UnixMilli()
	seeker.Ctime = now
	seeker.Utime = now
	err := dao.db.WithContext(ctx).Create(&seeker).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
		return 0, ErrDuplicateEmail
	}
	return seeker.Id, err
}

func (dao *JobSeekerGORMDAO) FindById(ctx context.Context, id int64) (JobSeeker, error) {
	var seeker JobSeeker
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&seeker).Error
	return seeker, err
}

func (dao *JobSeekerGORMDAO) ListSearchable(ctx context.Context, offset, limit int) ([]JobSeeker, error) {
	var res []JobSeeker
	err := dao.db.WithContext(ctx).
		Where("let_employers_find = ?", true).
		Order("utime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

type JobSeeker struct {
	Id               int64  `gorm:"primaryKey"`
	FirstName        string `gorm:"type:varchar(128)"`
	LastName         string `gorm:"type:varchar(128)"`
	FullName         string `gorm:"type:varchar(256)"`
	Email            string `gorm:"type:varchar(256);uniqueIndex"`
	Phone            string `gorm:"type:varchar(64)"`
	Location         string `gorm:"type:varchar(256)"`
	LetEmployersFind bool   `gorm:"index"`
	Password         string `gorm:"type:varchar(256)"`
	CustomFields     string `gorm:"type:text"`
	Ctime            int64
	Utime            int64
}

func (JobSeeker) TableName() string {
	return "job_seekers"
}
