package survey

import (
	"strconv"
	"strings"

	"SurveyBot/i18n"
	"SurveyBot/model"
)

// Selection tags carried in callback data.
const (
	TagEmployed  = "employed"
	TagShare     = "share"
	TagRegion    = "region"
	TagRating    = "rating"
	TagRecommend = "recommend"
)

type choice struct {
	Label string
	Code  string
}

var languageChoices = []choice{
	{"🇺🇿 O‘zbek", "uz"},
	{"🇷🇺 Русский", "ru"},
	{"🇬🇧 English", "en"},
}

var regionChoices = []choice{
	{"Toshkent shahri", "toshkent_shahri"},
	{"Andijon viloyati", "andijon"},
	{"Buxoro viloyati", "buxoro"},
	{"Farg‘ona viloyati", "fargona"},
	{"Jizzax viloyati", "jizzax"},
	{"Namangan viloyati", "namangan"},
	{"Navoiy viloyati", "navoiy"},
	{"Qashqadaryo viloyati", "qashqadaryo"},
	{"Samarqand viloyati", "samarqand"},
	{"Sirdaryo viloyati", "sirdaryo"},
	{"Surxondaryo viloyati", "surxondaryo"},
	{"Toshkent viloyati", "toshkent_vil"},
	{"Xorazm viloyati", "xorazm"},
	{"Qoraqalpog‘iston Respublikasi (avtonom)", "qoraqalpogiston"},
	{"Chet ellikman", "chet_ellikman"},
}

// ResolveLanguage maps a language button label or code to its code. The second result is false
// for anything unrecognized.
func ResolveLanguage(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	for _, c := range languageChoices {
		if strings.EqualFold(value, c.Label) || strings.EqualFold(value, c.Code) {
			return c.Code, true
		}
	}
	return "", false
}

// RegionLabel returns the display label for a region slug, or the slug itself when unknown.
func RegionLabel(slug string) string {
	for _, c := range regionChoices {
		if c.Code == slug {
			return c.Label
		}
	}
	return slug
}

// SelectionData encodes a menu option as callback data.
func SelectionData(tag, value string) string {
	return tag + ":" + value
}

// ParseSelection splits callback data into tag and value. Data without a separator yields an
// empty value.
func ParseSelection(data string) (tag, value string) {
	tag, value, _ = strings.Cut(data, ":")
	return tag, value
}

func languagePrompt(text string) *model.Prompt {
	p := &model.Prompt{Text: text, Hint: model.HintKeyboard}
	for _, c := range languageChoices {
		p.Options = append(p.Options, model.Option{Label: c.Label})
	}
	p.Layout = []int{len(languageChoices)}
	return p
}

func contactPrompt(lang, key string) *model.Prompt {
	return &model.Prompt{
		Text:    i18n.T(lang, key),
		Hint:    model.HintRequestContact,
		Options: []model.Option{{Label: i18n.T(lang, "share_contact")}},
	}
}

func textPrompt(lang, key string) *model.Prompt {
	return &model.Prompt{Text: i18n.T(lang, key), Hint: model.HintFreeText}
}

func yesNoPrompt(lang, key, tag string) *model.Prompt {
	return &model.Prompt{
		Text: i18n.T(lang, key),
		Hint: model.HintMenu,
		Options: []model.Option{
			{Label: i18n.T(lang, "button_yes"), Data: SelectionData(tag, "yes")},
			{Label: i18n.T(lang, "button_no"), Data: SelectionData(tag, "no")},
		},
		Layout: []int{2},
	}
}

func regionPrompt(lang string) *model.Prompt {
	p := &model.Prompt{Text: i18n.T(lang, "ask_region"), Hint: model.HintMenu, Layout: []int{2, 3}}
	for _, c := range regionChoices {
		p.Options = append(p.Options, model.Option{Label: c.Label, Data: SelectionData(TagRegion, c.Code)})
	}
	return p
}

func ratingPrompt(lang string) *model.Prompt {
	p := &model.Prompt{Text: i18n.T(lang, "ask_uni_rating"), Hint: model.HintMenu, Layout: []int{5}}
	for r := 1; r <= 5; r++ {
		v := strconv.Itoa(r)
		p.Options = append(p.Options, model.Option{Label: v, Data: SelectionData(TagRating, v)})
	}
	return p
}

func recommendationPrompt(lang string) *model.Prompt {
	return &model.Prompt{
		Text: i18n.T(lang, "ask_recommendation"),
		Hint: model.HintMenu,
		Options: []model.Option{
			{Label: i18n.T(lang, "button_yes"), Data: SelectionData(TagRecommend, string(model.RecommendYes))},
			{Label: i18n.T(lang, "button_no"), Data: SelectionData(TagRecommend, string(model.RecommendNo))},
			{Label: i18n.T(lang, "button_absolutely"), Data: SelectionData(TagRecommend, string(model.RecommendAbsolutely))},
		},
		Layout: []int{3},
	}
}
