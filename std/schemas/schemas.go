/*
Package schemas has the messages of the admin-schemas family.
*/
package schemas

import (
	"github.com/findy-network/findy-agent-toolbox/agent/aries"
	"github.com/findy-network/findy-agent-toolbox/agent/didcomm"
	"github.com/findy-network/findy-agent-toolbox/agent/pltype"
	"github.com/findy-network/findy-agent-toolbox/std/common"
	"github.com/findy-network/findy-agent-toolbox/std/decorator"
)

func init() {
	aries.Creator.Add(pltype.AdminSchemaSend, func() didcomm.Message { return &Send{} })
	aries.Creator.Add(pltype.AdminSchemaID, func() didcomm.Message { return &IDMsg{} })
	aries.Creator.Add(pltype.AdminSchemaGet, func() didcomm.Message { return &Get{} })
	aries.Creator.Add(pltype.AdminSchema, func() didcomm.Message { return &SchemaMsg{} })
	aries.Creator.Add(pltype.AdminSchemaGetList, func() didcomm.Message { return &GetList{} })
	aries.Creator.Add(pltype.AdminSchemaList, func() didcomm.Message { return &List{} })
}

type Schema struct {
	SchemaID       string   `json:"schema_id"`
	SchemaName     string   `json:"schema_name"`
	SchemaVersion  string   `json:"schema_version"`
	AttributeNames []string `json:"attribute_names"`
	Author         string   `json:"author,omitempty"`
}

type Send struct {
	didcomm.Header
	SchemaName     string   `json:"schema_name" validate:"required"`
	SchemaVersion  string   `json:"schema_version" validate:"required"`
	AttributeNames []string `json:"attribute_names" validate:"required,min=1,dive,required"`
}

func (m *Send) Validate() error { return common.Validate(m) }

type IDMsg struct {
	didcomm.Header
	SchemaID string `json:"schema_id"`
}

type Get struct {
	didcomm.Header
	SchemaID string `json:"schema_id" validate:"required"`
}

func (m *Get) Validate() error { return common.Validate(m) }

type SchemaMsg struct {
	didcomm.Header
	Schema
}

type GetList struct {
	didcomm.Header
	decorator.WithPaginate
}

func (m *GetList) Validate() error { return common.Validate(m) }

type List struct {
	didcomm.Header
	decorator.WithPage
	Results []Schema `json:"results"`
}
