package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suplefit/backoffice-api/internal/domain/entity"
	"github.com/suplefit/backoffice-api/pkg/apperror"
	"github.com/suplefit/backoffice-api/pkg/nfe"
)

const importKey = "35250812345678000199550010000012341123456789"

// importXML builds a minimal but complete NFe document. tpNF 0 is an
// inbound (purchase) document, 1 an outbound sale.
func importXML(tpNF, barcode string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<nfeProc xmlns="http://www.portalfiscal.inf.br/nfe" versao="4.00">
  <NFe>
    <infNFe Id="NFe` + importKey + `" versao="4.00">
      <ide>
        <natOp>COMPRA PARA REVENDA</natOp>
        <serie>1</serie>
        <nNF>1234</nNF>
        <dhEmi>2025-08-14T10:30:00-03:00</dhEmi>
        <tpNF>` + tpNF + `</tpNF>
      </ide>
      <emit>
        <CNPJ>12345678000199</CNPJ>
        <xNome>Distribuidora de Suplementos LTDA</xNome>
      </emit>
      <dest>
        <CNPJ>98765432000188</CNPJ>
        <xNome>SupleFit Suplementos</xNome>
      </dest>
      <det nItem="1">
        <prod>
          <cProd>WHEY900</cProd>
          <cEAN>` + barcode + `</cEAN>
          <xProd>Whey 900g</xProd>
          <NCM>21061000</NCM>
          <CFOP>1102</CFOP>
          <uCom>UN</uCom>
          <qCom>12.0000</qCom>
          <vUnCom>50.00</vUnCom>
          <vProd>600.00</vProd>
        </prod>
      </det>
      <total>
        <ICMSTot>
          <vProd>600.00</vProd>
          <vNF>600.00</vNF>
        </ICMSTot>
      </total>
    </infNFe>
  </NFe>
  <protNFe>
    <infProt>
      <nProt>135250000000001</nProt>
      <cStat>100</cStat>
    </infProt>
  </protNFe>
</nfeProc>`
}

func TestImportXMLRejectsInvalidDocument(t *testing.T) {
	created := 0
	invoiceRepo := &mockFiscalInvoiceRepo{
		CreateWithItemsFn: func(ctx context.Context, invoice *entity.FiscalInvoice, items []entity.FiscalInvoiceItem) error {
			created++
			return nil
		},
	}
	svc := NewFiscalService(invoiceRepo, &mockProductRepo{})

	_, err := svc.ImportXML(context.Background(), uuid.New(), []byte("<html>not a fiscal document</html>"))

	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
	assert.Zero(t, created, "nothing may be written when the parse fails")
}

func TestImportXMLRejectsDuplicateAccessKey(t *testing.T) {
	created := 0
	invoiceRepo := &mockFiscalInvoiceRepo{
		ExistsByAccessKeyFn: func(ctx context.Context, accessKey string) (bool, error) {
			assert.Equal(t, importKey, accessKey)
			return true, nil
		},
		CreateWithItemsFn: func(ctx context.Context, invoice *entity.FiscalInvoice, items []entity.FiscalInvoiceItem) error {
			created++
			return nil
		},
	}
	svc := NewFiscalService(invoiceRepo, &mockProductRepo{})

	_, err := svc.ImportXML(context.Background(), uuid.New(), []byte(importXML("0", "7891234567895")))

	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
	assert.Zero(t, created)
}

func TestImportXMLOnlyWritesOnceAcrossRetries(t *testing.T) {
	created := 0
	invoiceRepo := &mockFiscalInvoiceRepo{
		ExistsByAccessKeyFn: func(ctx context.Context, accessKey string) (bool, error) {
			return created > 0, nil
		},
		CreateWithItemsFn: func(ctx context.Context, invoice *entity.FiscalInvoice, items []entity.FiscalInvoiceItem) error {
			created++
			return nil
		},
	}
	svc := NewFiscalService(invoiceRepo, &mockProductRepo{})
	raw := []byte(importXML("0", "7891234567895"))

	_, err := svc.ImportXML(context.Background(), uuid.New(), raw)
	require.NoError(t, err)

	_, err = svc.ImportXML(context.Background(), uuid.New(), raw)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
	assert.Equal(t, 1, created)
}

func TestImportXMLInboundRestocksByBarcode(t *testing.T) {
	productID := uuid.New()
	incremented := 0
	productRepo := &mockProductRepo{
		GetByBarcodeFn: func(ctx context.Context, barcode string) (*entity.Product, error) {
			if barcode == "7891234567895" {
				return &entity.Product{ID: productID, Barcode: barcode, Quantity: 3}, nil
			}
			return nil, nil
		},
		AtomicIncrementQuantityFn: func(ctx context.Context, id uuid.UUID, amount int) error {
			assert.Equal(t, productID, id)
			assert.Equal(t, 12, amount)
			incremented++
			return nil
		},
	}
	svc := NewFiscalService(&mockFiscalInvoiceRepo{}, productRepo)

	summary, err := svc.ImportXML(context.Background(), uuid.New(), []byte(importXML("0", "7891234567895")))

	require.NoError(t, err)
	assert.Equal(t, 1, summary.ItemCount)
	assert.Equal(t, 1, summary.RestockedItems)
	assert.Zero(t, summary.SkippedItems)
	assert.Equal(t, 1, incremented)
	assert.Equal(t, nfe.DirectionInbound, summary.Invoice.Direction)
	assert.Equal(t, nfe.StatusAuthorized, summary.Invoice.Status)
}

func TestImportXMLInboundSkipsUnknownBarcode(t *testing.T) {
	incremented := 0
	productRepo := &mockProductRepo{
		AtomicIncrementQuantityFn: func(ctx context.Context, id uuid.UUID, amount int) error {
			incremented++
			return nil
		},
	}
	svc := NewFiscalService(&mockFiscalInvoiceRepo{}, productRepo)

	summary, err := svc.ImportXML(context.Background(), uuid.New(), []byte(importXML("0", "SEM GTIN")))

	require.NoError(t, err, "an unmatched line must not fail the import")
	assert.Equal(t, 1, summary.SkippedItems)
	assert.Zero(t, summary.RestockedItems)
	assert.Zero(t, incremented)
}

func TestImportXMLOutboundDoesNotRestock(t *testing.T) {
	lookups := 0
	productRepo := &mockProductRepo{
		GetByBarcodeFn: func(ctx context.Context, barcode string) (*entity.Product, error) {
			lookups++
			return nil, nil
		},
	}
	svc := NewFiscalService(&mockFiscalInvoiceRepo{}, productRepo)

	summary, err := svc.ImportXML(context.Background(), uuid.New(), []byte(importXML("1", "7891234567895")))

	require.NoError(t, err)
	assert.Equal(t, nfe.DirectionOutbound, summary.Invoice.Direction)
	assert.Zero(t, summary.RestockedItems)
	assert.Zero(t, lookups, "sales documents never touch stock on import")
}

func TestGetInvoiceNotFound(t *testing.T) {
	svc := NewFiscalService(&mockFiscalInvoiceRepo{}, &mockProductRepo{})

	_, err := svc.GetInvoice(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestDeleteInvoiceNotFound(t *testing.T) {
	deleted := 0
	invoiceRepo := &mockFiscalInvoiceRepo{
		DeleteFn: func(ctx context.Context, id uuid.UUID) error {
			deleted++
			return nil
		},
	}
	svc := NewFiscalService(invoiceRepo, &mockProductRepo{})

	err := svc.DeleteInvoice(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
	assert.Zero(t, deleted)
}
