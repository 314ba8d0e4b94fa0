package web

import (
	"github.com/ecodeclub/ekit/slice"

	"github.com/hirebook/hirebook/internal/formfield/internal/domain"
)

type FieldDefinition struct {
	Id          int64  `json:"id,omitempty"`
	Caption     string `json:"caption,omitempty"`
	Kind        string `json:"kind,omitempty"`
	Required    bool   `json:"required,omitempty"`
	Hidden      bool   `json:"hidden,omitempty"`
	Options     string `json:"options,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	HelpText    string `json:"helpText,omitempty"`
	Context     string `json:"context,omitempty"`
	Order       int    `json:"order,omitempty"`
}

func (f FieldDefinition) toDomain() domain.FieldDefinition {
	return domain.FieldDefinition{
		Id:          f.Id,
		Caption:     f.Caption,
		Kind:        domain.Kind(f.Kind),
		Required:    f.Required,
		Hidden:      f.Hidden,
		Options:     f.Options,
		Placeholder: f.Placeholder,
		HelpText:    f.HelpText,
		Context:     domain.Context(f.Context),
		Order:       f.Order,
	}
}

func newFieldDefinition(def domain.FieldDefinition) FieldDefinition {
	return FieldDefinition{
		Id:          def.Id,
		Caption:     def.Caption,
		Kind:        string(def.Kind),
		Required:    def.Required,
		Hidden:      def.Hidden,
		Options:     def.Options,
		Placeholder: def.Placeholder,
		HelpText:    def.HelpText,
		Context:     string(def.Context),
		Order:       def.Order,
	}
}

type Control struct {
	FieldId     int64    `json:"fieldId,omitempty"`
	Key         string   `json:"key,omitempty"`
	Caption     string   `json:"caption,omitempty"`
	Type        string   `json:"type,omitempty"`
	InputType   string   `json:"inputType,omitempty"`
	Label       string   `json:"label,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	HelpText    string   `json:"helpText,omitempty"`
	Required    bool     `json:"required,omitempty"`
	Hidden      bool     `json:"hidden,omitempty"`
	Options     []string `json:"options,omitempty"`
	EmptyOption string   `json:"emptyOption,omitempty"`
	Accept      string   `json:"accept,omitempty"`
	FileName    string   `json:"fileName,omitempty"`
	Value       Value    `json:"value"`
}

type Value struct {
	Text     string   `json:"text,omitempty"`
	Checked  bool     `json:"checked,omitempty"`
	Selected []string `json:"selected,omitempty"`
	URL      string   `json:"url,omitempty"`
}

func newControl(c domain.Control) Control {
	return Control{
		FieldId:     c.FieldId,
		Key:         c.Key,
		Caption:     c.Caption,
		Type:        string(c.Type),
		InputType:   c.InputType,
		Label:       c.Label,
		Placeholder: c.Placeholder,
		HelpText:    c.HelpText,
		Required:    c.Required,
		Hidden:      c.Hidden,
		Options:     c.Options,
		EmptyOption: c.EmptyOption,
		Accept:      c.Accept,
		FileName:    c.FileName,
		Value: Value{
			Text:     c.Value.Text,
			Checked:  c.Value.Checked,
			Selected: c.Value.Selected,
			URL:      c.Value.URL,
		},
	}
}

type FieldsResp struct {
	Fields   []FieldDefinition `json:"fields"`
	Controls []Control         `json:"controls"`
}

func newFieldsResp(defs []domain.FieldDefinition, controls []domain.Control) FieldsResp {
	return FieldsResp{
		Fields: slice.Map(defs, func(idx int, src domain.FieldDefinition) FieldDefinition {
			return newFieldDefinition(src)
		}),
		Controls: slice.Map(controls, func(idx int, src domain.Control) Control {
			return newControl(src)
		}),
	}
}

type SaveFieldReq struct {
	Field FieldDefinition `json:"field"`
}

type DeleteFieldReq struct {
	Id      int64  `json:"id"`
	Context string `json:"context"`
}

type ListFieldsReq struct {
	Context string `json:"context"`
}
