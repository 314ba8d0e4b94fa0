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

//go:build e2e

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/hirebook/hirebook/internal/employer"
	"github.com/hirebook/hirebook/internal/employer/internal/web"
	"github.com/hirebook/hirebook/internal/formfield"
	"github.com/hirebook/hirebook/internal/pkg/snowflake"
	"github.com/hirebook/hirebook/internal/test"
	testioc "github.com/hirebook/hirebook/internal/test/ioc"
	"github.com/hirebook/hirebook/internal/upload"
)

type HandlerTestSuite struct {
	suite.Suite
	server  *egin.Component
	db      *egorm.Component
	formSvc formfield.Service
	fields  map[string]int64
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	q := testioc.InitMQ()
	idGen, err := snowflake.NewRoleAwareGenerator(1, 2)
	require.NoError(s.T(), err)
	uploadModule, err := upload.InitModule()
	require.NoError(s.T(), err)
	formfieldModule, err := formfield.InitModule(s.db, testioc.InitCache(), uploadModule)
	require.NoError(s.T(), err)
	module, err := employer.InitModule(s.db, q, idGen, formfieldModule)
	require.NoError(s.T(), err)
	s.formSvc = formfieldModule.Svc

	econf.Set("server", map[string]any{"contextTimeout": "3s"})
	server := egin.Load("server").Build()
	module.Hdl.PublicRoutes(server.Engine)
	s.server = server

	// 雇主注册表单：公司名是 TEXT，logo 是 PICTURE
	s.fields = make(map[string]int64, 2)
	for _, def := range []formfield.FieldDefinition{
		{Caption: "Company Name", Kind: "TEXT", Required: true, Context: formfield.ContextEmployer, Order: 1},
		{Caption: "Logo", Kind: "PICTURE", Context: formfield.ContextEmployer, Order: 2},
	} {
		id, err := s.formSvc.SaveField(context.Background(), def)
		require.NoError(s.T(), err)
		s.fields[def.Caption] = id
	}
}

func (s *HandlerTestSuite) TearDownSuite() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `employers`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `form_field_definitions`").Error)
}

func (s *HandlerTestSuite) register(email string) test.JSONResponseRecorder[web.Employer] {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	form, err := json.Marshal(map[string]any{
		"values": map[string]any{
			fmt.Sprintf("customField_%d", s.fields["Company Name"]): "ACME",
		},
		"canonical": map[string]any{
			"email":    email,
			"password": "s3cret",
			"location": "Shanghai",
		},
	})
	require.NoError(s.T(), err)
	require.NoError(s.T(), writer.WriteField("form", string(form)))
	part, err := writer.CreateFormFile(
		fmt.Sprintf("customField_%d", s.fields["Logo"]), "logo.png")
	require.NoError(s.T(), err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(s.T(), err)
	require.NoError(s.T(), writer.Close())

	req, err := http.NewRequest(http.MethodPost, "/employer/register", &body)
	require.NoError(s.T(), err)
	req.Header.Set("content-type", writer.FormDataContentType())
	recorder := test.NewJSONResponseRecorder[web.Employer]()
	s.server.ServeHTTP(recorder, req)
	return recorder
}

func (s *HandlerTestSuite) TestRegister() {
	t := s.T()
	email := fmt.Sprintf("hr-%d@acme.example.com", time.Now().UnixNano())
	recorder := s.register(email)
	require.Equal(t, 200, recorder.Code)
	emp := recorder.MustScan().Data

	// 规范属性从字段值推导出来
	assert.Equal(t, "ACME", emp.CompanyName)
	assert.Equal(t, email, emp.Email)
	assert.Equal(t, "Shanghai", emp.Location)
	// logo 上传后落在 logos 目录
	assert.Contains(t, emp.LogoURL, "/logos/")
	// 账号 ID 带雇主分区
	assert.Equal(t, snowflake.RoleEmployer, snowflake.ID(emp.Id).Role())

	// 同一邮箱重复注册
	dup := s.register(email)
	require.Equal(t, 200, dup.Code)
	assert.Equal(t, 513002, dup.MustScan().Code)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
