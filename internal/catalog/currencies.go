package catalog

import "github.com/chrisdamba/menucraft/internal/models"

var currencies = []models.Currency{
	{Code: "SAR", Symbol: "ر.س", Name: "Saudi Riyal", Flag: "🇸🇦"},
	{Code: "USD", Symbol: "$", Name: "US Dollar", Flag: "🇺🇸"},
	{Code: "EUR", Symbol: "€", Name: "Euro", Flag: "🇪🇺"},
	{Code: "IQD", Symbol: "د.ع", Name: "Iraqi Dinar", Flag: "🇮🇶"},
	{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham", Flag: "🇦🇪"},
	{Code: "KWD", Symbol: "د.ك", Name: "Kuwaiti Dinar", Flag: "🇰🇼"},
	{Code: "QAR", Symbol: "ر.ق", Name: "Qatari Riyal", Flag: "🇶🇦"},
	{Code: "BHD", Symbol: "د.ب", Name: "Bahraini Dinar", Flag: "🇧🇭"},
	{Code: "OMR", Symbol: "ر.ع", Name: "Omani Rial", Flag: "🇴🇲"},
	{Code: "JOD", Symbol: "د.أ", Name: "Jordanian Dinar", Flag: "🇯🇴"},
	{Code: "LBP", Symbol: "ل.ل", Name: "Lebanese Pound", Flag: "🇱🇧"},
	{Code: "EGP", Symbol: "ج.م", Name: "Egyptian Pound", Flag: "🇪🇬"},
}

// Currencies returns a copy of the currency catalog.
func Currencies() []models.Currency {
	return append([]models.Currency(nil), currencies...)
}

func DefaultCurrency() models.Currency {
	return currencies[0]
}

func CurrencyByCode(code string) (models.Currency, bool) {
	for _, c := range currencies {
		if c.Code == code {
			return c, true
		}
	}
	return models.Currency{}, false
}
