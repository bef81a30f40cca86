package currency

import "strings"

// regionCurrencies maps ISO 3166-1 alpha-2 regions to their currency code.
// Used as the locale fallback when a transcript carries no currency signal.
var regionCurrencies = map[string]string{
	"US": "USD", "GB": "GBP", "IN": "INR", "AE": "AED", "JP": "JPY",
	"CN": "CNY", "CH": "CHF", "CA": "CAD", "AU": "AUD", "NZ": "NZD",
	"SG": "SGD", "HK": "HKD", "KR": "KRW", "RU": "RUB", "TR": "TRY",
	"BR": "BRL", "MX": "MXN", "ZA": "ZAR", "SE": "SEK", "NO": "NOK",
	"DK": "DKK", "PL": "PLN", "IL": "ILS", "SA": "SAR", "QA": "QAR",
	"KW": "KWD", "BH": "BHD", "OM": "OMR", "TH": "THB", "PH": "PHP",
	"ID": "IDR", "MY": "MYR", "VN": "VND", "PK": "PKR", "BD": "BDT",
	"LK": "LKR", "NP": "NPR", "EG": "EGP", "NG": "NGN", "KE": "KES",
	"UA": "UAH", "CZ": "CZK", "HU": "HUF", "RO": "RON", "TW": "TWD",
	"AR": "ARS", "CL": "CLP", "CO": "COP", "PE": "PEN", "UY": "UYU",
	"BO": "BOB", "VE": "VES", "PY": "PYG", "GT": "GTQ", "HN": "HNL",
	"NI": "NIO", "CR": "CRC", "PA": "PAB", "DO": "DOP", "CU": "CUP",
	"JM": "JMD", "TT": "TTD", "BB": "BBD", "BS": "BSD", "BZ": "BZD",
	"IS": "ISK", "BG": "BGN", "RS": "RSD", "MK": "MKD", "BA": "BAM",
	"MD": "MDL", "AL": "ALL", "BY": "BYN", "GE": "GEL", "AM": "AMD",
	"AZ": "AZN", "KZ": "KZT", "UZ": "UZS", "KG": "KGS", "TJ": "TJS",
	"TM": "TMT", "IQ": "IQD", "JO": "JOD", "YE": "YER", "LB": "LBP",
	"SY": "SYP", "IR": "IRR", "AF": "AFN", "LY": "LYD", "DZ": "DZD",
	"TN": "TND", "MA": "MAD", "SD": "SDG", "GH": "GHS", "TZ": "TZS",
	"UG": "UGX", "SO": "SOS", "RW": "RWF", "ET": "ETB", "MW": "MWK",
	"ZM": "ZMW", "BW": "BWP", "NA": "NAD", "MZ": "MZN", "AO": "AOA",
	"MM": "MMK", "KH": "KHR", "LA": "LAK", "MN": "MNT", "BN": "BND",
	"MO": "MOP", "MV": "MVR", "BT": "BTN", "FJ": "FJD", "PG": "PGK",
	// Eurozone.
	"AT": "EUR", "BE": "EUR", "CY": "EUR", "DE": "EUR", "EE": "EUR",
	"ES": "EUR", "FI": "EUR", "FR": "EUR", "GR": "EUR", "HR": "EUR",
	"IE": "EUR", "IT": "EUR", "LT": "EUR", "LU": "EUR", "LV": "EUR",
	"MT": "EUR", "NL": "EUR", "PT": "EUR", "SI": "EUR", "SK": "EUR",
}

// RegionFromLocale extracts the region subtag from a BCP 47 style locale
// identifier such as "en_AE", "en-US", or "ar_SA". Returns "" when no
// region is present.
func RegionFromLocale(locale string) string {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "-", "_")
	parts := strings.Split(locale, "_")
	// The first subtag is the language; the region is the first two-letter
	// subtag after it. Script subtags ("Hans") are four letters and skipped.
	for _, part := range parts[1:] {
		if len(part) == 2 && isAlpha(part) {
			return strings.ToUpper(part)
		}
	}
	return ""
}

// CurrencyForLocale resolves a locale identifier to a currency code, or ""
// when the region is missing or unmapped.
func CurrencyForLocale(locale string) string {
	region := RegionFromLocale(locale)
	if region == "" {
		return ""
	}
	return regionCurrencies[region]
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
