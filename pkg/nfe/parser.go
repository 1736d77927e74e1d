package nfe

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var (
	// ErrNotNFe means the payload is not a recognizable NF-e envelope.
	ErrNotNFe = errors.New("nfe: document is not a valid NFe or nfeProc envelope")
	// ErrMissingIssuer means the required emit block is absent.
	ErrMissingIssuer = errors.New("nfe: issuer block (emit) missing")
	// ErrMissingRecipient means the required dest block is absent.
	ErrMissingRecipient = errors.New("nfe: recipient block (dest) missing")
	// ErrMissingIdentification means the required ide block is absent.
	ErrMissingIdentification = errors.New("nfe: identification block (ide) missing")
)

// Parse extracts a normalized Invoice from raw NF-e XML.
//
// Both the nfeProc envelope (document plus authorization protocol) and the
// bare NFe envelope are accepted. Documents declared as ISO-8859-1 or
// windows-1252 are transparently decoded.
//
// Required blocks (ide, emit, dest) missing fail the whole parse; optional
// fields missing default to zero values and never fail it.
func Parse(raw []byte) (*Invoice, error) {
	var proc procNFeXML
	if err := decode(raw, &proc); err == nil && proc.NFe.InfNFe.ID != "" {
		return build(&proc.NFe.InfNFe, &proc.ProtNFe)
	}

	var env struct {
		XMLName xml.Name `xml:"NFe"`
		InfNFe  infNFeXML `xml:"infNFe"`
	}
	if err := decode(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotNFe, err)
	}
	if env.InfNFe.ID == "" {
		return nil, fmt.Errorf("%w: infNFe Id attribute not found", ErrNotNFe)
	}
	return build(&env.InfNFe, nil)
}

func decode(raw []byte, v interface{}) error {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.CharsetReader = charsetReader
	return dec.Decode(v)
}

// charsetReader handles the legacy latin-1 declarations still emitted by
// some issuer software.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "iso-8859-1", "latin1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("nfe: unsupported charset %q", charset)
	}
}

func build(inf *infNFeXML, prot *protNFeXML) (*Invoice, error) {
	if inf.Ide.NNF == "" && inf.Ide.NatOp == "" {
		return nil, ErrMissingIdentification
	}
	if inf.Emit.XNome == "" && inf.Emit.CNPJ == "" && inf.Emit.CPF == "" {
		return nil, ErrMissingIssuer
	}
	if inf.Dest.XNome == "" && inf.Dest.CNPJ == "" && inf.Dest.CPF == "" {
		return nil, ErrMissingRecipient
	}

	inv := &Invoice{
		AccessKey:       AccessKeyFromID(inf.ID),
		Number:          inf.Ide.NNF,
		Series:          inf.Ide.Serie,
		OperationNature: inf.Ide.NatOp,
		Direction:       direction(inf.Ide.TpNF),
		Issuer: Party{
			TaxID:             firstNonEmpty(inf.Emit.CNPJ, inf.Emit.CPF),
			LegalName:         inf.Emit.XNome,
			TradeName:         inf.Emit.XFant,
			StateRegistration: inf.Emit.IE,
			Address:           address(inf.Emit.Ender),
		},
		Recipient: Party{
			TaxID:             firstNonEmpty(inf.Dest.CNPJ, inf.Dest.CPF),
			LegalName:         inf.Dest.XNome,
			StateRegistration: inf.Dest.IE,
			Address:           address(inf.Dest.Ender),
		},
		Totals: Totals{
			Goods:    dec(inf.Total.ICMSTot.VProd),
			Freight:  dec(inf.Total.ICMSTot.VFrete),
			Discount: dec(inf.Total.ICMSTot.VDesc),
			ICMS:     dec(inf.Total.ICMSTot.VICMS),
			ST:       dec(inf.Total.ICMSTot.VST),
			IPI:      dec(inf.Total.ICMSTot.VIPI),
			Net:      dec(inf.Total.ICMSTot.VNF),
		},
		Status: StatusPending,
	}

	inv.IssueDate = date(firstNonEmpty(inf.Ide.DhEmi, inf.Ide.DEmi))
	if inf.Ide.DhSai != "" {
		exit := date(inf.Ide.DhSai)
		inv.ExitDate = &exit
	}

	for i, det := range inf.Det {
		item := Item{
			Number:      i + 1,
			Code:        det.Prod.CProd,
			Barcode:     barcode(det.Prod.CEAN),
			Description: det.Prod.XProd,
			NCM:         det.Prod.NCM,
			CFOP:        det.Prod.CFOP,
			Unit:        det.Prod.UCom,
			Quantity:    dec(det.Prod.QCom),
			UnitPrice:   dec(det.Prod.VUnCom),
			Total:       dec(det.Prod.VProd),
			ICMS:        dec(det.Imposto.ICMS.firstICMS()),
			IPI:         dec(det.Imposto.IPI.IPITrib.VIPI),
		}
		// nItem, when present and sane, must agree with document order.
		if n, err := strconv.Atoi(det.NItem); err == nil && n > 0 {
			item.Number = n
		}
		inv.Items = append(inv.Items, item)
	}

	if prot != nil {
		inv.Protocol = prot.InfProt.NProt
		// cStat 100 is the authority's "Autorizado o uso da NF-e" code.
		// Anything else stays pending; no free-text matching.
		if prot.InfProt.CStat == "100" {
			inv.Status = StatusAuthorized
		}
	}

	return inv, nil
}

func direction(tpNF string) Direction {
	if strings.TrimSpace(tpNF) == "0" {
		return DirectionInbound
	}
	return DirectionOutbound
}

func address(a addressXML) Address {
	return Address{
		Street:   a.XLgr,
		Number:   a.Nro,
		District: a.XBairro,
		City:     a.XMun,
		State:    a.UF,
		CEP:      a.CEP,
	}
}

// dec parses a decimal field tolerantly: absent or malformed values
// become zero so a single bad optional field never fails the document.
func dec(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// date parses the formats seen in the wild: RFC3339 with offset (layout
// 4.00 dhEmi) and the bare date of layout 2.00.
func date(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func barcode(cEAN string) string {
	cEAN = strings.TrimSpace(cEAN)
	if strings.EqualFold(cEAN, "SEM GTIN") {
		return ""
	}
	return cEAN
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
