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

// 唯一索引冲突
const uniqueIndexErrNo uint16 = 1062

type EmployerDAO interface {
	Create(ctx context.Context, emp Employer) (int64, error)
	FindById(ctx context.Context, id int64) (Employer, error)
	FindByEmail(ctx context.Context, email string) (Employer, error)
	UpdateNonZero(ctx context.Context, emp Employer) error
}

type EmployerGORMDAO struct {
	db *egorm.Component
}

func NewEmployerGORMDAO(db *egorm.Component) EmployerDAO {
	return &EmployerGORMDAO{db: db}
}

func (dao *EmployerGORMDAO) Create(ctx context.Context, emp Employer) (int64, error) {
	now := time.Now().UnixMilli()
	emp.Ctime = now
	emp.Utime = now
	err := dao.db.WithContext(ctx).Create(&emp).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
		return 0, ErrDuplicateEmail
	}
	return emp.Id, err
}

func (dao *EmployerGORMDAO) FindById(ctx context.Context, id int64) (Employer, error) {
	var emp Employer
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&emp).Error
	return emp, err
}

func (dao *EmployerGORMDAO) FindByEmail(ctx context.Context, email string) (Employer, error) {
	var emp Employer
	err := dao.db.WithContext(ctx).Where("email = ?", email).First(&emp).Error
	return emp, err
}

func (dao *EmployerGORMDAO) UpdateNonZero(ctx context.Context, emp Employer) error {
	emp.Utime = time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Where("id = ?", emp.Id).Updates(emp).Error
}

type Employer struct {
	// 账号 ID 由雪花算法生成，不用自增
	Id          int64  `gorm:"primaryKey"`
	CompanyName string `gorm:"type:varchar(256)"`
	Website     string `gorm:"type:varchar(512)"`
	Email       string `gorm:"type:varchar(256);uniqueIndex"`
	Phone       string `gorm:"type:varchar(64)"`
	Location    string `gorm:"type:varchar(256)"`
	LogoUrl     string `gorm:"type:varchar(1024)"`
	Password    string `gorm:"type:varchar(256)"`
	// 动态字段装配载荷的 JSON
	CustomFields string `gorm:"type:text"`
	Ctime        int64
	Utime        int64
}

func (Employer) TableName() string {
	return "employers"
}
