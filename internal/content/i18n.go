// Package content holds the localized UI strings and the educational topics.
package content

import "cryptowise/internal/domain"

var english = map[string]string{
	"home_title":                  "Welcome to CryptoWise",
	"home_text":                   "A platform to learn, explore, and trade cryptocurrency securely. Your gateway to smart digital wealth.",
	"register_title":              "Create Your Account",
	"login_title":                 "Login to Your Account",
	"trading_title":               "Live Trading Desk",
	"benefits_title":              "Benefits of Crypto Trading",
	"risks_title":                 "Risks in Crypto Trading",
	"solutions_title":             "Smart Solutions",
	"logout_message":              "You have been logged out.",
	"username_label":              "Username",
	"email_label":                 "Email",
	"password_label":              "Password",
	"register_button":             "Register",
	"login_button":                "Login",
	"amount_label":                "Amount in USD",
	"buy_now_button":              "Buy Now",
	"select_coin_label":           "Select Coin",
	"current_price_label":         "Current",
	"invalid_credentials":         "Invalid credentials.",
	"username_exists":             "Username already exists.",
	"logout_button":               "Logout",
	"reminder_title":              "Set Reminder",
	"reminder_text":               "Remind me about crypto prices:",
	"1_day_ago":                   "1 Day Ago",
	"1_year_ago":                  "1 Year Ago",
	"previous_prices":             "Previous Prices",
	"download_data":               "Download Data",
	"settings_title":              "Settings",
	"language_setting":            "Select Language",
	"language_en":                 "English",
	"language_ur":                 "Urdu",
	"language_ru":                 "Roman Urdu",
	"upload_image_title":          "Upload Image",
	"image_details_title":         "Image Details",
	"no_image_uploaded":           "No image uploaded yet.",
	"error_image_upload":          "Error uploading image.",
	"error_amount_less_than_0":    "Amount must be greater than 0.",
	"required_field":              "This field is required",
	"bitcoin_trading_image_title": "Bitcoin Trading",
	"image_click_message":         "Click on the image to see details.",

	"register_success":   "Registered successfully. You can now login.",
	"welcome_back":       "Welcome back, %s!",
	"login_required":     "Please login first to access trading.",
	"unknown_asset":      "This coin is not available for trading.",
	"reminder_in_past":   "Reminder time must be in the future.",
	"reminder_set":       "Reminder set.",
	"no_trading_history": "No trading history available.",
	"unsupported_format": "Unsupported download format.",
	"invalid_request":    "Invalid request.",
	"not_found":          "Not found.",
	"internal_error":     "Something went wrong. Please try again.",
	"summary_title":      "Summary Table",
}

var urdu = map[string]string{
	"home_title":                  "CryptoWise میں خوش آمدید",
	"home_text":                   "محفوظ طریقے سے کریپٹو کرنسی سیکھنے، دریافت کرنے اور تجارت کرنے کا ایک پلیٹ فارم۔ آپ کی ڈیجیٹل دولت کا گیٹ وے۔",
	"register_title":              "اپنا اکاؤنٹ بنائیں",
	"login_title":                 "اپنے اکاؤنٹ میں لاگ ان کریں",
	"trading_title":               "لائیو ٹریڈنگ ڈیسک",
	"benefits_title":              "کریپٹو ٹریڈنگ کے فوائد",
	"risks_title":                 "کریپٹو ٹریڈنگ میں خطرات",
	"solutions_title":             "اسمارٹ حل",
	"logout_message":              "آپ لاگ آؤٹ ہو گئے ہیں۔",
	"username_label":              "صارف نام",
	"email_label":                 "ای میل",
	"password_label":              "پاس ورڈ",
	"register_button":             "رجسٹر کریں",
	"login_button":                "لاگ ان کریں",
	"amount_label":                "USD میں مقدار",
	"buy_now_button":              "ابھی خریدیں",
	"select_coin_label":           "سکہ منتخب کریں",
	"current_price_label":         "موجودہ قیمت",
	"invalid_credentials":         "غلط اسناد۔",
	"username_exists":             "صارف نام پہلے سے موجود ہے۔",
	"logout_button":               "لاگ آؤٹ",
	"reminder_title":              "یاد دہانی سیٹ کریں",
	"reminder_text":               "مجھے کریپٹو کی قیمتوں کے بارے میں یاد دلائیں:",
	"1_day_ago":                   "1 دن پہلے",
	"1_year_ago":                  "1 سال پہلے",
	"previous_prices":             "پچھلی قیمتیں",
	"download_data":               "ڈیٹا ڈاؤن لوڈ کریں",
	"settings_title":              "ترتیبات",
	"language_setting":            "زبان منتخب کریں",
	"language_en":                 "انگریزی",
	"language_ur":                 "اردو",
	"language_ru":                 "رومن اردو",
	"upload_image_title":          "تصویر اپ لوڈ کریں",
	"image_details_title":         "تصویر کی تفصیلات",
	"no_image_uploaded":           "کوئی تصویر اپ لوڈ نہیں کی گئی۔",
	"error_image_upload":          "تصویر اپ لوڈ کرنے میں خرابی۔",
	"error_amount_less_than_0":    "مقدار 0 سے زیادہ ہونی چاہیے۔",
	"required_field":              "یہ فیلڈ ضروری ہے",
	"bitcoin_trading_image_title": "بٹ کوائن ٹریڈنگ",
	"image_click_message":         "تفصیلات دیکھنے کے لیے تصویر پر کلک کریں۔",

	"register_success":   "کامیابی سے رجسٹر ہو گئے۔ اب آپ لاگ ان کر سکتے ہیں۔",
	"welcome_back":       "خوش آمدید، %s!",
	"login_required":     "ٹریڈنگ کے لیے پہلے لاگ ان کریں۔",
	"reminder_in_past":   "یاد دہانی کا وقت مستقبل میں ہونا چاہیے۔",
	"no_trading_history": "کوئی ٹریڈنگ ہسٹری دستیاب نہیں۔",
}

// Roman Urdu ships the Urdu strings with its own username wording.
var romanUrdu = overlay(urdu, map[string]string{
	"username_label":  "یوزرنیم",
	"username_exists": "یوزرنیم پہلے سے موجود ہے۔",
	"welcome_back":    "Khush aamdeed, %s!",
})

var translations = map[string]map[string]string{
	domain.LanguageEnglish:   english,
	domain.LanguageUrdu:      urdu,
	domain.LanguageRomanUrdu: romanUrdu,
}

func overlay(base, changes map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(changes))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range changes {
		out[k] = v
	}
	return out
}

// Text returns the string for key in lang. Keys missing from lang fall back
// to English, and keys missing from English come back unchanged.
func Text(lang, key string) string {
	if table, ok := translations[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := english[key]; ok {
		return s
	}
	return key
}

// Table returns every string of lang with English filling the gaps.
// Unknown languages get the English table.
func Table(lang string) map[string]string {
	return overlay(english, translations[lang])
}

// Language is a supported locale with its display name
type Language struct {
	Tag  string `json:"tag"`
	Name string `json:"name"`
}

// Languages lists the supported locales, named in the display language
func Languages(display string) []Language {
	out := make([]Language, 0, len(domain.SupportedLanguages))
	for _, tag := range domain.SupportedLanguages {
		out = append(out, Language{Tag: tag, Name: Text(display, "language_"+tag)})
	}
	return out
}

// Resolve picks the first supported language of candidates, else fallback
func Resolve(fallback string, candidates ...string) string {
	for _, c := range candidates {
		if domain.IsSupportedLanguage(c) {
			return c
		}
	}
	return fallback
}
