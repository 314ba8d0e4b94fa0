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

type FieldDefinitionDAO interface {
	ListByContext(ctx context.Context, fctx string) ([]FieldDefinition, error)
	GetByID(ctx context.Context, id int64) (FieldDefinition, error)
	Save(ctx context.Context, def FieldDefinition) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type FieldDefinitionGORMDAO struct {
	db *egorm.Component
}

func NewFieldDefinitionGORMDAO(db *egorm.Component) FieldDefinitionDAO {
	return &FieldDefinitionGORMDAO{db: db}
}

func (dao *FieldDefinitionGORMDAO) ListByContext(ctx context.Context, fctx string) ([]FieldDefinition, error) {
	var res []FieldDefinition
	err := dao.db.WithContext(ctx).
		Where("context = ?", fctx).
		Order("display_order ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (dao *FieldDefinitionGORMDAO) GetByID(ctx context.Context, id int64) (FieldDefinition, error) {
	var res FieldDefinition
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *FieldDefinitionGORMDAO) Save(ctx context.Context, def FieldDefinition) (int64, error) {
	now := time.Now().UnixMilli()
	def.Utime = now
	if def.Id == 0 {
		def.Ctime = now
		err := dao.db.WithContext(ctx).Create(&def).Error
		return def.Id, err
	}
	err := dao.db.WithContext(ctx).Model(&FieldDefinition{}).
		Where("id = ?", def.Id).
		Updates(map[string]any{
			"caption":       def.Caption,
			"kind":          def.Kind,
			"required":      def.Required,
			"hidden":        def.Hidden,
			"options":       def.Options,
			"placeholder":   def.Placeholder,
			"help_text":     def.HelpText,
			"display_order": def.Order,
			"utime":         def.Utime,
		}).Error
	return def.Id, err
}

func (dao *FieldDefinitionGORMDAO) Delete(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Where("id = ?", id).Delete(&FieldDefinition{}).Error
}

// FieldDefinition 动态字段定义。order 是 SQL 关键字，列名用 display_order
type FieldDefinition struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Caption     string `gorm:"type:varchar(512)"`
	Kind        string `gorm:"type:varchar(64)"`
	Required    bool
	Hidden      bool
	Options     string `gorm:"type:text"`
	Placeholder string `gorm:"type:varchar(512)"`
	HelpText    string `gorm:"type:varchar(1024)"`
	Context     string `gorm:"type:varchar(32);index"`
	Order       int    `gorm:"column:display_order"`
	Ctime       int64
	Utime       int64
}

func (FieldDefinition) TableName() string {
	return "form_field_definitions"
}
