package api

import (
	"net/http"
	"strconv"

	"github.com/dmitrymomot/msgfmt"
	"github.com/dmitrymomot/msgfmt/pkg/i18n"
	"github.com/dmitrymomot/msgfmt/pkg/messagepattern"
	"github.com/dmitrymomot/msgfmt/pkg/patterncache"
)

// PatternHandler serves the pattern parsing and formatting endpoints.
type PatternHandler struct {
	compiler    *patterncache.Compiler
	defaultLang string
}

// NewPatternHandler creates a handler that compiles patterns with compiler.
// defaultLang is used by /v1/format when neither the body nor the request
// context name a language.
func NewPatternHandler(compiler *patterncache.Compiler, defaultLang string) *PatternHandler {
	if defaultLang == "" {
		defaultLang = "en"
	}
	return &PatternHandler{compiler: compiler, defaultLang: defaultLang}
}

// Routes declares the pattern routes.
func (h *PatternHandler) Routes(r msgfmt.Router) {
	r.Route("/v1", func(r msgfmt.Router) {
		r.POST("/parse", h.parse)
		r.POST("/format", h.format)
		r.GET("/arguments/{name}", h.validateArgument)
	})
}

// PartResponse is one parsed part.
type PartResponse struct {
	Kind      string `json:"kind"`
	Index     int    `json:"index"`
	Length    int    `json:"length"`
	Limit     int    `json:"limit"`
	Value     int    `json:"value"`
	ArgType   string `json:"argType,omitempty"`
	Substring string `json:"substring"`
	// NumericValue is set for ArgInt and ArgDouble parts. It is a string
	// so that the choice infinity survives JSON.
	NumericValue string `json:"numericValue,omitempty"`
	// LimitPart is the index of the matching limit part for start parts.
	LimitPart *int `json:"limitPart,omitempty"`
}

// ParseResponse is the body returned by POST /v1/parse.
type ParseResponse struct {
	Pattern              string         `json:"pattern"`
	Style                string         `json:"style"`
	Mode                 string         `json:"mode"`
	Parts                []PartResponse `json:"parts"`
	HasNamedArguments    bool           `json:"hasNamedArguments"`
	HasNumberedArguments bool           `json:"hasNumberedArguments"`
	NeedsAutoQuoting     bool           `json:"needsAutoQuoting"`
	AutoQuoted           string         `json:"autoQuoted"`
}

// FormatResponse is the body returned by POST /v1/format and /v1/translate.
type FormatResponse struct {
	Result string `json:"result"`
	Lang   string `json:"lang"`
}

// ArgumentResponse is the body returned by GET /v1/arguments/{name}.
type ArgumentResponse struct {
	Name   string `json:"name"`
	Valid  bool   `json:"valid"`
	Number *int   `json:"number,omitempty"`
}

func (h *PatternHandler) parse(c msgfmt.Context) error {
	var req ParseRequest
	if err := c.BindJSON(&req); err != nil {
		return err
	}

	kind, mode, err := resolveOptions(h.compiler, req.Style, req.Mode)
	if err != nil {
		return err
	}

	mp, err := h.compiler.CompileWithMode(c.Context(), mode, kind, req.Pattern)
	if err != nil {
		return parseFailure(err)
	}

	return c.JSON(http.StatusOK, NewParseResponse(mp, kind))
}

func (h *PatternHandler) format(c msgfmt.Context) error {
	var req FormatRequest
	if err := c.BindJSON(&req); err != nil {
		return err
	}

	kind, mode, err := resolveOptions(h.compiler, req.Style, req.Mode)
	if err != nil {
		return err
	}

	mp, err := h.compiler.CompileWithMode(c.Context(), mode, kind, req.Pattern)
	if err != nil {
		return parseFailure(err)
	}

	lang := req.Lang
	if lang == "" {
		lang = c.Language()
	}
	if lang == "" {
		lang = h.defaultLang
	}

	var format []i18n.FormatterOption
	if tr := c.Translator(); tr != nil && tr.Language() == lang {
		format = append(format, i18n.WithLocaleFormat(tr.LocaleFormat()))
	}
	f := i18n.NewFormatter(lang, format...)

	var result string
	switch kind {
	case patterncache.KindChoice, patterncache.KindPlural:
		n, ok := numberValue(req.Value)
		if !ok {
			return msgfmt.ErrBadRequest("value must be a number for "+kind.String()+" styles",
				msgfmt.WithErrorCode(CodeInvalidValue),
			)
		}
		if kind == patterncache.KindChoice {
			result, err = f.FormatChoice(mp, n, req.Args)
		} else {
			result, err = f.FormatPlural(mp, n, req.Args)
		}
	case patterncache.KindSelect:
		keyword, ok := req.Value.(string)
		if !ok {
			return msgfmt.ErrBadRequest("value must be a string for select styles",
				msgfmt.WithErrorCode(CodeInvalidValue),
			)
		}
		result, err = f.FormatSelect(mp, keyword, req.Args)
	default:
		result, err = f.Format(mp, req.Args)
	}
	if err != nil {
		return formatFailure(err)
	}

	return c.JSON(http.StatusOK, FormatResponse{Result: result, Lang: lang})
}

func (h *PatternHandler) validateArgument(c msgfmt.Context) error {
	name := c.Param("name")
	resp := ArgumentResponse{Name: name}

	switch n := messagepattern.ValidateArgumentName(name); {
	case n >= 0:
		resp.Valid = true
		resp.Number = &n
	case n == messagepattern.ArgNameNotNumber:
		resp.Valid = true
	}

	return c.JSON(http.StatusOK, resp)
}

// NewParseResponse describes a parsed pattern.
func NewParseResponse(mp *messagepattern.MessagePattern, kind patterncache.Kind) ParseResponse {
	return ParseResponse{
		Pattern:              mp.PatternString(),
		Style:                kind.String(),
		Mode:                 mp.ApostropheMode().String(),
		Parts:                describeParts(mp),
		HasNamedArguments:    mp.HasNamedArguments(),
		HasNumberedArguments: mp.HasNumberedArguments(),
		NeedsAutoQuoting:     mp.NeedsAutoQuoting(),
		AutoQuoted:           mp.AutoQuoteApostropheDeep(),
	}
}

func describeParts(mp *messagepattern.MessagePattern) []PartResponse {
	parts := make([]PartResponse, mp.CountParts())
	for i := range parts {
		p := mp.Part(i)
		pr := PartResponse{
			Kind:      p.Kind().String(),
			Index:     p.Index(),
			Length:    p.Length(),
			Limit:     p.Limit(),
			Value:     p.Value(),
			Substring: mp.Substring(p),
		}
		switch p.Kind() {
		case messagepattern.ArgStart, messagepattern.ArgLimit:
			pr.ArgType = p.ArgType().String()
		case messagepattern.ArgInt, messagepattern.ArgDouble:
			pr.NumericValue = strconv.FormatFloat(mp.NumericValue(p), 'g', -1, 64)
		}
		if p.Kind() == messagepattern.MessageStart || p.Kind() == messagepattern.ArgStart {
			limit := mp.LimitPartIndex(i)
			pr.LimitPart = &limit
		}
		parts[i] = pr
	}
	return parts
}
