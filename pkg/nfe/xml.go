package nfe

import "encoding/xml"

// Raw XML shapes for the two envelope formats:
//
//   - nfeProc: the distributed document, NFe plus authorization protocol
//   - NFe:     the bare document, no protocol
//
// Only the element paths the importer needs are mapped; everything else
// is skipped by encoding/xml.

type procNFeXML struct {
	XMLName xml.Name   `xml:"nfeProc"`
	NFe     nfeXML     `xml:"NFe"`
	ProtNFe protNFeXML `xml:"protNFe"`
}

type nfeXML struct {
	InfNFe infNFeXML `xml:"infNFe"`
}

type infNFeXML struct {
	ID    string   `xml:"Id,attr"`
	Ide   ideXML   `xml:"ide"`
	Emit  emitXML  `xml:"emit"`
	Dest  destXML  `xml:"dest"`
	Det   []detXML `xml:"det"`
	Total totalXML `xml:"total"`
}

type ideXML struct {
	NatOp string `xml:"natOp"`
	Serie string `xml:"serie"`
	NNF   string `xml:"nNF"`
	DhEmi string `xml:"dhEmi"`
	DEmi  string `xml:"dEmi"` // legacy layout 2.00
	DhSai string `xml:"dhSaiEnt"`
	TpNF  string `xml:"tpNF"`
}

type emitXML struct {
	CNPJ  string     `xml:"CNPJ"`
	CPF   string     `xml:"CPF"`
	XNome string     `xml:"xNome"`
	XFant string     `xml:"xFant"`
	IE    string     `xml:"IE"`
	Ender addressXML `xml:"enderEmit"`
}

type destXML struct {
	CNPJ  string     `xml:"CNPJ"`
	CPF   string     `xml:"CPF"`
	XNome string     `xml:"xNome"`
	IE    string     `xml:"IE"`
	Ender addressXML `xml:"enderDest"`
}

type addressXML struct {
	XLgr    string `xml:"xLgr"`
	Nro     string `xml:"nro"`
	XBairro string `xml:"xBairro"`
	XMun    string `xml:"xMun"`
	UF      string `xml:"UF"`
	CEP     string `xml:"CEP"`
}

type detXML struct {
	NItem   string     `xml:"nItem,attr"`
	Prod    prodXML    `xml:"prod"`
	Imposto impostoXML `xml:"imposto"`
}

type prodXML struct {
	CProd  string `xml:"cProd"`
	CEAN   string `xml:"cEAN"`
	XProd  string `xml:"xProd"`
	NCM    string `xml:"NCM"`
	CFOP   string `xml:"CFOP"`
	UCom   string `xml:"uCom"`
	QCom   string `xml:"qCom"`
	VUnCom string `xml:"vUnCom"`
	VProd  string `xml:"vProd"`
}

// impostoXML flattens the ICMS CST groups: exactly one of the groups is
// present per item, so the first non-empty vICMS wins.
type impostoXML struct {
	ICMS icmsXML `xml:"ICMS"`
	IPI  ipiXML  `xml:"IPI"`
}

type icmsXML struct {
	ICMS00    icmsValueXML `xml:"ICMS00"`
	ICMS10    icmsValueXML `xml:"ICMS10"`
	ICMS20    icmsValueXML `xml:"ICMS20"`
	ICMS51    icmsValueXML `xml:"ICMS51"`
	ICMS60    icmsValueXML `xml:"ICMS60"`
	ICMS70    icmsValueXML `xml:"ICMS70"`
	ICMS90    icmsValueXML `xml:"ICMS90"`
	ICMSSN101 icmsCredXML  `xml:"ICMSSN101"`
}

type icmsValueXML struct {
	VICMS string `xml:"vICMS"`
}

type icmsCredXML struct {
	VCredICMSSN string `xml:"vCredICMSSN"`
}

type ipiXML struct {
	IPITrib ipiTribXML `xml:"IPITrib"`
}

type ipiTribXML struct {
	VIPI string `xml:"vIPI"`
}

type totalXML struct {
	ICMSTot icmsTotXML `xml:"ICMSTot"`
}

type icmsTotXML struct {
	VICMS  string `xml:"vICMS"`
	VST    string `xml:"vST"`
	VProd  string `xml:"vProd"`
	VFrete string `xml:"vFrete"`
	VDesc  string `xml:"vDesc"`
	VIPI   string `xml:"vIPI"`
	VNF    string `xml:"vNF"`
}

type protNFeXML struct {
	InfProt infProtXML `xml:"infProt"`
}

type infProtXML struct {
	ChNFe string `xml:"chNFe"`
	NProt string `xml:"nProt"`
	CStat string `xml:"cStat"`
}

// firstICMS returns the vICMS (or SN credit) of whichever CST group is
// populated.
func (i icmsXML) firstICMS() string {
	for _, v := range []string{
		i.ICMS00.VICMS, i.ICMS10.VICMS, i.ICMS20.VICMS, i.ICMS51.VICMS,
		i.ICMS60.VICMS, i.ICMS70.VICMS, i.ICMS90.VICMS, i.ICMSSN101.VCredICMSSN,
	} {
		if v != "" {
			return v
		}
	}
	return ""
}
