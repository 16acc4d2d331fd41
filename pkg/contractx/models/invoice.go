package models

import "fmt"

// Reference workbook column labels, matched case-sensitively.
const (
	ColContract        = "CONTRATO"
	ColPartnerCode     = "CODIGO PARCEIRO"
	ColNegotiationType = "TIPO DE NEGOCIACAO"
	ColOperationType   = "TIPO OPERACAO"
	ColResultCenter    = "CENTRO RESULTADO"
	ColProject         = "PROJETO"
	ColNature          = "NATUREZA"
	ColCity            = "CIDADE"
	ColServiceCity     = "CIDADE SERVICO"
	ColProduct         = "PRODUTO"
)

// InvoiceColumns lists the invoice attribute labels in record order.
var InvoiceColumns = []string{
	ColContract,
	ColPartnerCode,
	ColNegotiationType,
	ColOperationType,
	ColResultCenter,
	ColProject,
	ColNature,
	ColCity,
	ColServiceCity,
	ColProduct,
}

// InvoiceRecord is a reference workbook row matched by contract number.
type InvoiceRecord struct {
	Contract        int64 `json:"CONTRATO"`
	PartnerCode     int64 `json:"CODIGO PARCEIRO"`
	NegotiationType int64 `json:"TIPO DE NEGOCIACAO"`
	OperationType   int64 `json:"TIPO OPERACAO"`
	ResultCenter    int64 `json:"CENTRO RESULTADO"`
	Project         int64 `json:"PROJETO"`
	Nature          int64 `json:"NATUREZA"`
	City            int64 `json:"CIDADE"`
	ServiceCity     int64 `json:"CIDADE SERVICO"`
	Product         int64 `json:"PRODUTO"`
}

// Attr returns a pointer to the attribute stored under label, or nil for an unknown label.
func (r *InvoiceRecord) Attr(label string) *int64 {
	switch label {
	case ColContract:
		return &r.Contract
	case ColPartnerCode:
		return &r.PartnerCode
	case ColNegotiationType:
		return &r.NegotiationType
	case ColOperationType:
		return &r.OperationType
	case ColResultCenter:
		return &r.ResultCenter
	case ColProject:
		return &r.Project
	case ColNature:
		return &r.Nature
	case ColCity:
		return &r.City
	case ColServiceCity:
		return &r.ServiceCity
	case ColProduct:
		return &r.Product
	}
	return nil
}

func (r InvoiceRecord) String() string {
	return fmt.Sprintf("InvoiceRecord(CONTRATO=%d, CODIGO PARCEIRO=%d, TIPO DE NEGOCIACAO=%d, TIPO OPERACAO=%d, "+
		"CENTRO RESULTADO=%d, PROJETO=%d, NATUREZA=%d, CIDADE=%d, CIDADE SERVICO=%d, PRODUTO=%d)",
		r.Contract, r.PartnerCode, r.NegotiationType, r.OperationType,
		r.ResultCenter, r.Project, r.Nature, r.City, r.ServiceCity, r.Product)
}
