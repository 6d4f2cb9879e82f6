// Package i18n traduce los mensajes visibles para el usuario. Jemer (km) es el idioma
// por defecto; inglés (en) es el alternativo.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Claves de mensajes.
const (
	KeyInvalidBody        = "error.invalid_body"
	KeyValidation         = "error.validation"
	KeyUpstream           = "error.upstream"
	KeyNotFound           = "error.not_found"
	KeyUnauthorized       = "error.unauthorized"
	KeyInvalidCredentials = "error.invalid_credentials"
	KeyInsufficientStock  = "error.insufficient_stock"
	KeyConflict           = "error.conflict"
	KeySubmissionPending  = "error.submission_pending"
	KeyCounterpartyLocked = "error.counterparty_locked"
	KeyInternal           = "error.internal"
	KeySaleCreated        = "info.sale_created"
	KeyPurchaseCreated    = "info.purchase_created"
	KeyPurchaseUpdated    = "info.purchase_updated"
)

var supported = []language.Tag{language.Khmer, language.English}

var matcher = language.NewMatcher(supported)

var messages = map[string][2]string{ // {km, en}
	KeyInvalidBody:        {"ទិន្នន័យដែលផ្ញើមិនត្រឹមត្រូវ!", "Invalid request body"},
	KeyValidation:         {"សូមបំពេញទិន្នន័យទាំងអស់!", "Please fill in all required fields!"},
	KeyUpstream:           {"មានបញ្ហាក្នុងការភ្ជាប់ទៅម៉ាស៊ីនមេ សូមព្យាយាមម្តងទៀត!", "The server could not complete the request, please try again"},
	KeyNotFound:           {"រកមិនឃើញទិន្នន័យ!", "Record not found"},
	KeyUnauthorized:       {"សូមចូលប្រើប្រាស់ម្តងទៀត!", "Please log in again"},
	KeyInvalidCredentials: {"ឈ្មោះអ្នកប្រើ ឬពាក្យសម្ងាត់មិនត្រឹមត្រូវ!", "Invalid username or password"},
	KeyInsufficientStock:  {"ស្តុកមិនគ្រប់គ្រាន់!", "Not enough stock"},
	KeyConflict:           {"ទិន្នន័យត្រូវបានកែប្រែរួចហើយ!", "The record changed, reload and try again"},
	KeySubmissionPending:  {"កំពុងរក្សាទុក សូមរង់ចាំ!", "This submission is already in progress"},
	KeyCounterpartyLocked: {"មិនអាចប្តូរអតិថិជនបានទេ ព្រោះមានទំនិញក្នុងកន្ត្រក!", "The customer cannot change while the cart has items"},
	KeyInternal:           {"មានបញ្ហាមិនរំពឹងទុក!", "Unexpected error"},
	KeySaleCreated:        {"ការលក់ត្រូវបានបង្កើតដោយជោគជ័យ!", "Sale created"},
	KeyPurchaseCreated:    {"ការទិញបានបញ្ចូលដោយជោគជ័យ!", "Purchase created"},
	KeyPurchaseUpdated:    {"ការទិញបានកែប្រែដោយជោគជ័យ!", "Purchase updated"},

	"reason.required":               {"ត្រូវតែបំពេញ", "is required"},
	"reason.must_be_positive":       {"ត្រូវតែធំជាងសូន្យ", "must be greater than zero"},
	"reason.must_not_be_negative":   {"មិនអាចតិចជាងសូន្យ", "must not be negative"},
	"reason.invalid_format":         {"ទម្រង់មិនត្រឹមត្រូវ", "has an invalid format"},
	"reason.empty_cart":             {"មិនអាចរក្សាទុកបានទេ ព្រោះអ្នកមិនបានបន្ថែមទំនិញទៅកន្ត្រក!", "the cart is empty"},
	"reason.missing_counterparty":   {"សូមជ្រើសរើសអតិថិជន!", "select a customer or supplier"},
	"reason.negative_paid":          {"ប្រាក់បង់មិនអាចតិចជាងសូន្យ", "the paid amount must not be negative"},
	"reason.paid_exceeds_liability": {"ប្រាក់បង់លើសពីតម្លៃសរុប និងបំណុល", "the paid amount exceeds total and debt"},
	"reason.insufficient_stock":     {"ស្តុកមិនគ្រប់គ្រាន់", "not enough stock"},
	"reason.counterparty_locked":    {"មិនអាចប្តូរបានទេ", "is locked while the cart has items"},
	"reason.line_not_found":         {"រកមិនឃើញជួរនេះ", "line not found"},
}

var cat = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.Khmer))
	for key, m := range messages {
		_ = b.SetString(language.Khmer, key, m[0])
		_ = b.SetString(language.English, key, m[1])
	}
	return b
}

// Translator traduce claves a un idioma fijo.
type Translator struct {
	tag language.Tag
	p   *message.Printer
}

// New crea un traductor para lang ("km", "en", o un Accept-Language completo).
// Idiomas no soportados caen en jemer.
func New(lang string) *Translator {
	tag := Match(lang)
	return &Translator{tag: tag, p: message.NewPrinter(tag, message.Catalog(cat))}
}

// Match elige el idioma soportado más cercano a lang.
func Match(lang string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return language.Khmer
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return language.Khmer
	}
	return supported[idx]
}

// Lang código del idioma elegido.
func (t *Translator) Lang() string { return t.tag.String() }

// T traduce key. Una clave desconocida se devuelve tal cual.
func (t *Translator) T(key string, args ...any) string {
	return t.p.Sprintf(key, args...)
}

// Reason traduce una causa de validación.
func (t *Translator) Reason(reason string) string {
	return t.T("reason." + reason)
}
