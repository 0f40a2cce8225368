// Package i18n holds the bot's message catalogue.
package i18n

import "SurveyBot/model"

// DefaultLanguage is used for unknown languages and for the language question itself.
const DefaultLanguage = "uz"

// Languages lists the supported language codes.
var Languages = []string{"uz", "ru", "en"}

var messages = map[string]map[string]string{
	"uz": {
		"start_choose_language":   "Assalomu alaykum! Iltimos, tilni tanlang:",
		"language_not_supported":  "Iltimos, quyidagi tillardan birini tanlang.",
		"ask_contact":             "Iltimos, telefon raqamingizni yuboring:",
		"share_contact":           "📱 Raqamni yuborish",
		"contact_required":        "Davom etish uchun «Raqamni yuborish» tugmasini bosing.",
		"ask_first_name":          "Ismingizni kiriting:",
		"ask_last_name":           "Familiyangizni kiriting:",
		"ask_student_id":          "Talabalik ID raqamingizni kiriting:",
		"ask_is_employed":         "Hozirda ishlayapsizmi?",
		"button_yes":              "Ha",
		"button_no":               "Yo‘q",
		"button_absolutely":       "Albatta",
		"ask_work_place":          "Ish joyingizni kiriting:",
		"ask_position":            "Lavozimingizni kiriting:",
		"ask_share_with_employer": "Ma’lumotlaringizni ish beruvchilar bilan ulashishga rozimisiz?",
		"ask_region":              "Qaysi hududdansiz?",
		"ask_uni_rating":          "Universitetni 1 dan 5 gacha baholang:",
		"invalid_rating":          "Iltimos, 1 dan 5 gacha baho tanlang.",
		"ask_recommendation":      "Universitetimizni boshqalarga tavsiya qilasizmi?",
		"invalid_input":           "Noto‘g‘ri tanlov. Iltimos, qaytadan urinib ko‘ring.",
		"ask_uni_improvement":     "Universitetni yaxshilash bo‘yicha takliflaringiz:",
		"thanks":                  "Rahmat! Javoblaringiz saqlandi.",
	},
	"ru": {
		"start_choose_language":   "Здравствуйте! Пожалуйста, выберите язык:",
		"language_not_supported":  "Пожалуйста, выберите один из предложенных языков.",
		"ask_contact":             "Пожалуйста, отправьте свой номер телефона:",
		"share_contact":           "📱 Отправить номер",
		"contact_required":        "Чтобы продолжить, нажмите кнопку «Отправить номер».",
		"ask_first_name":          "Введите ваше имя:",
		"ask_last_name":           "Введите вашу фамилию:",
		"ask_student_id":          "Введите ваш студенческий ID:",
		"ask_is_employed":         "Вы сейчас работаете?",
		"button_yes":              "Да",
		"button_no":               "Нет",
		"button_absolutely":       "Обязательно",
		"ask_work_place":          "Укажите место работы:",
		"ask_position":            "Укажите вашу должность:",
		"ask_share_with_employer": "Согласны ли вы поделиться своими данными с работодателями?",
		"ask_region":              "Из какого вы региона?",
		"ask_uni_rating":          "Оцените университет от 1 до 5:",
		"invalid_rating":          "Пожалуйста, выберите оценку от 1 до 5.",
		"ask_recommendation":      "Порекомендуете ли вы наш университет другим?",
		"invalid_input":           "Неверный выбор. Попробуйте ещё раз.",
		"ask_uni_improvement":     "Ваши предложения по улучшению университета:",
		"thanks":                  "Спасибо! Ваши ответы сохранены.",
	},
	"en": {
		"start_choose_language":   "Hello! Please choose a language:",
		"language_not_supported":  "Please pick one of the languages below.",
		"ask_contact":             "Please share your phone number:",
		"share_contact":           "📱 Share contact",
		"contact_required":        "Tap «Share contact» to continue.",
		"ask_first_name":          "Enter your first name:",
		"ask_last_name":           "Enter your last name:",
		"ask_student_id":          "Enter your student ID:",
		"ask_is_employed":         "Are you currently employed?",
		"button_yes":              "Yes",
		"button_no":               "No",
		"button_absolutely":       "Absolutely",
		"ask_work_place":          "Enter your workplace:",
		"ask_position":            "Enter your position:",
		"ask_share_with_employer": "Do you agree to share your details with employers?",
		"ask_region":              "Which region are you from?",
		"ask_uni_rating":          "Rate the university from 1 to 5:",
		"invalid_rating":          "Please choose a rating from 1 to 5.",
		"ask_recommendation":      "Would you recommend our university to others?",
		"invalid_input":           "Invalid choice. Please try again.",
		"ask_uni_improvement":     "Your suggestions for improving the university:",
		"thanks":                  "Thank you! Your answers have been saved.",
	},
}

// T returns the message for key in lang, falling back to DefaultLanguage and then to the key itself.
func T(lang, key string) string {
	table, ok := messages[lang]
	if !ok {
		table = messages[DefaultLanguage]
	}
	if text, ok := table[key]; ok {
		return text
	}
	if text, ok := messages[DefaultLanguage][key]; ok {
		return text
	}
	return key
}

// StoreLabels are the yes/no/absolutely labels written to the sheet. The sheet is kept in Uzbek
// whatever language the respondent picked.
func StoreLabels() model.Labels {
	return model.Labels{
		Yes:        T(DefaultLanguage, "button_yes"),
		No:         T(DefaultLanguage, "button_no"),
		Absolutely: T(DefaultLanguage, "button_absolutely"),
	}
}
