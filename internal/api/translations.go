package api

import (
	"net/http"

	"github.com/dmitrymomot/msgfmt"
	"github.com/dmitrymomot/msgfmt/pkg/i18n"
)

// TranslationHandler renders messages from a translation catalog.
type TranslationHandler struct {
	catalog   *i18n.I18n
	namespace string
}

// NewTranslationHandler creates a handler over catalog. namespace is used
// when a request does not name one.
func NewTranslationHandler(catalog *i18n.I18n, namespace string) *TranslationHandler {
	return &TranslationHandler{catalog: catalog, namespace: namespace}
}

// Routes declares the translation routes.
func (h *TranslationHandler) Routes(r msgfmt.Router) {
	r.POST("/v1/translate", h.translate)
}

func (h *TranslationHandler) translate(c msgfmt.Context) error {
	var req TranslateRequest
	if err := c.BindJSON(&req); err != nil {
		return err
	}
	if req.Key == "" {
		return msgfmt.ErrBadRequest("key is required", msgfmt.WithField("field", "key"))
	}

	lang := req.Lang
	if lang == "" {
		lang = c.Language()
	}
	if lang == "" {
		lang = h.catalog.DefaultLanguage()
	}
	ns := req.Namespace
	if ns == "" {
		ns = h.namespace
	}
	if ns == "" {
		return msgfmt.ErrBadRequest("namespace is required", msgfmt.WithField("field", "namespace"))
	}

	result, err := h.catalog.Format(c.Context(), lang, ns, req.Key, req.Args)
	if err != nil {
		return formatFailure(err)
	}

	return c.JSON(http.StatusOK, FormatResponse{Result: result, Lang: lang})
}
