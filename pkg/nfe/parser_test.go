package nfe

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleKey = "35250812345678000199550010000012341123456789"

func sampleXML(dest string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<nfeProc xmlns="http://www.portalfiscal.inf.br/nfe" versao="4.00">
  <NFe>
    <infNFe Id="NFe` + sampleKey + `" versao="4.00">
      <ide>
        <natOp>VENDA DE MERCADORIA</natOp>
        <serie>1</serie>
        <nNF>1234</nNF>
        <dhEmi>2025-08-14T10:30:00-03:00</dhEmi>
        <tpNF>1</tpNF>
      </ide>
      <emit>
        <CNPJ>12345678000199</CNPJ>
        <xNome>Distribuidora de Suplementos LTDA</xNome>
        <xFant>SupleDistrib</xFant>
        <IE>123456789</IE>
        <enderEmit>
          <xLgr>Rua das Industrias</xLgr>
          <nro>100</nro>
          <xBairro>Centro</xBairro>
          <xMun>Sao Paulo</xMun>
          <UF>SP</UF>
          <CEP>01310100</CEP>
        </enderEmit>
      </emit>
      ` + dest + `
      <det nItem="1">
        <prod>
          <cProd>WHEY900</cProd>
          <cEAN>7891234567895</cEAN>
          <xProd>Whey 900g</xProd>
          <NCM>21061000</NCM>
          <CFOP>5102</CFOP>
          <uCom>UN</uCom>
          <qCom>2.0000</qCom>
          <vUnCom>50.00</vUnCom>
          <vProd>100.00</vProd>
        </prod>
        <imposto>
          <ICMS><ICMS00><vICMS>18.00</vICMS></ICMS00></ICMS>
        </imposto>
      </det>
      <total>
        <ICMSTot>
          <vICMS>18.00</vICMS>
          <vST>0.00</vST>
          <vProd>100.00</vProd>
          <vFrete>0.00</vFrete>
          <vDesc>0.00</vDesc>
          <vIPI>0.00</vIPI>
          <vNF>100.00</vNF>
        </ICMSTot>
      </total>
    </infNFe>
  </NFe>
  <protNFe>
    <infProt>
      <chNFe>` + sampleKey + `</chNFe>
      <nProt>135250000012345</nProt>
      <cStat>100</cStat>
    </infProt>
  </protNFe>
</nfeProc>`
}

const sampleDest = `<dest>
        <CPF>52998224725</CPF>
        <xNome>Joao da Silva</xNome>
        <enderDest>
          <xLgr>Av Paulista</xLgr>
          <nro>1000</nro>
          <xBairro>Bela Vista</xBairro>
          <xMun>Sao Paulo</xMun>
          <UF>SP</UF>
          <CEP>01310000</CEP>
        </enderDest>
      </dest>`

func TestParse_ProcNFe(t *testing.T) {
	inv, err := Parse([]byte(sampleXML(sampleDest)))
	require.NoError(t, err)

	assert.Equal(t, sampleKey, inv.AccessKey)
	assert.Equal(t, "1234", inv.Number)
	assert.Equal(t, "1", inv.Series)
	assert.Equal(t, "VENDA DE MERCADORIA", inv.OperationNature)
	assert.Equal(t, DirectionOutbound, inv.Direction)
	assert.Equal(t, 2025, inv.IssueDate.Year())

	assert.Equal(t, "12345678000199", inv.Issuer.TaxID)
	assert.Equal(t, "Distribuidora de Suplementos LTDA", inv.Issuer.LegalName)
	assert.Equal(t, "SupleDistrib", inv.Issuer.TradeName)
	assert.Equal(t, "Sao Paulo", inv.Issuer.Address.City)

	assert.Equal(t, "52998224725", inv.Recipient.TaxID)
	assert.Equal(t, "Joao da Silva", inv.Recipient.LegalName)

	assert.True(t, inv.Totals.Net.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, inv.Totals.Goods.Equal(decimal.RequireFromString("100.00")))

	require.Len(t, inv.Items, 1)
	item := inv.Items[0]
	assert.Equal(t, 1, item.Number)
	assert.Equal(t, "WHEY900", item.Code)
	assert.Equal(t, "7891234567895", item.Barcode)
	assert.Equal(t, "Whey 900g", item.Description)
	assert.Equal(t, "UN", item.Unit)
	assert.True(t, item.Quantity.Equal(decimal.RequireFromString("2")))
	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, item.Total.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, item.ICMS.Equal(decimal.RequireFromString("18.00")))

	assert.Equal(t, "135250000012345", inv.Protocol)
	assert.Equal(t, StatusAuthorized, inv.Status)
}

func TestParse_BareNFeWithoutProtocol(t *testing.T) {
	full := sampleXML(sampleDest)
	start := strings.Index(full, "<NFe>")
	end := strings.Index(full, "</NFe>") + len("</NFe>")
	bare := `<?xml version="1.0" encoding="UTF-8"?>` + "\n" + full[start:end]

	inv, err := Parse([]byte(bare))
	require.NoError(t, err)
	assert.Equal(t, sampleKey, inv.AccessKey)
	assert.Equal(t, StatusPending, inv.Status)
	assert.Empty(t, inv.Protocol)
}

func TestParse_MissingRecipientFails(t *testing.T) {
	_, err := Parse([]byte(sampleXML("")))
	assert.ErrorIs(t, err, ErrMissingRecipient)
}

func TestParse_NotXML(t *testing.T) {
	_, err := Parse([]byte("definitely not xml"))
	assert.ErrorIs(t, err, ErrNotNFe)
}

func TestParse_ItemNumbersSequential(t *testing.T) {
	// Duplicate the det block to produce three items.
	full := sampleXML(sampleDest)
	detStart := strings.Index(full, "<det ")
	detEnd := strings.Index(full, "</det>") + len("</det>")
	det := full[detStart:detEnd]
	det2 := strings.Replace(det, `nItem="1"`, `nItem="2"`, 1)
	det3 := strings.Replace(det, `nItem="1"`, `nItem="3"`, 1)
	full = full[:detEnd] + det2 + det3 + full[detEnd:]

	inv, err := Parse([]byte(full))
	require.NoError(t, err)
	require.Len(t, inv.Items, 3)
	for i, item := range inv.Items {
		assert.Equal(t, i+1, item.Number)
	}
}

func TestParse_Latin1Declaration(t *testing.T) {
	xml := strings.Replace(sampleXML(sampleDest), `encoding="UTF-8"`, `encoding="ISO-8859-1"`, 1)
	inv, err := Parse([]byte(xml))
	require.NoError(t, err)
	assert.Equal(t, sampleKey, inv.AccessKey)
}

func TestParse_AbsentNumericFieldsDefaultToZero(t *testing.T) {
	xml := strings.Replace(sampleXML(sampleDest), "<vFrete>0.00</vFrete>", "", 1)
	inv, err := Parse([]byte(xml))
	require.NoError(t, err)
	assert.True(t, inv.Totals.Freight.IsZero())
}

func TestAccessKeyFromID(t *testing.T) {
	assert.Equal(t, sampleKey, AccessKeyFromID("NFe"+sampleKey))
	assert.Equal(t, sampleKey, AccessKeyFromID(sampleKey))
	assert.Equal(t, "", AccessKeyFromID("NFe123"))
	assert.Equal(t, "", AccessKeyFromID(""))
}

func TestValidateAccessKey(t *testing.T) {
	// Base of the sample key with its correct mod-11 check digit (0).
	valid := sampleKey[:43] + "0"
	assert.NoError(t, ValidateAccessKey(valid))

	assert.Error(t, ValidateAccessKey(""))
	assert.Error(t, ValidateAccessKey("123"))
	assert.Error(t, ValidateAccessKey(strings.Repeat("a", 44)))
	// Same digits, wrong check digit.
	assert.Error(t, ValidateAccessKey(sampleKey[:43]+"5"))
}
