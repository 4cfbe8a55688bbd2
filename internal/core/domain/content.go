package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("content not found")

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageTamil   Language = "ta"

	DefaultLanguage   = LanguageEnglish
	AlternateLanguage = LanguageTamil
)

// ParseLanguage maps a language code to a supported Language, falling back to
// the default language for anything it does not recognise.
func ParseLanguage(code string) Language {
	switch Language(code) {
	case LanguageTamil:
		return LanguageTamil
	default:
		return LanguageEnglish
	}
}

func (l Language) Other() Language {
	if l == AlternateLanguage {
		return DefaultLanguage
	}

	return AlternateLanguage
}

// LocalizedText is a bilingual value. Secondary holds the alternate-language
// text and is nil when the row has no translation.
type LocalizedText struct {
	Primary   string  `json:"primary"`
	Secondary *string `json:"secondary,omitempty"`
}

func NewLocalizedText(primary string, secondary *string) LocalizedText {
	return LocalizedText{Primary: primary, Secondary: secondary}
}

type HeroContent struct {
	ID              uuid.UUID     `json:"id"`
	Title           LocalizedText `json:"title"`
	Subtitle        LocalizedText `json:"subtitle"`
	BackgroundImage string        `json:"background_image"`
}

type GameOffering struct {
	ID          uuid.UUID     `json:"id"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	Image       string        `json:"image"`
	CategoryID  *uuid.UUID    `json:"category_id,omitempty"`
}

type GameCategory struct {
	ID   uuid.UUID     `json:"id"`
	Name LocalizedText `json:"name"`
	Slug string        `json:"slug"`
}

type GalleryEvent struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Date  time.Time `json:"date"`
	Image string    `json:"image"`
}

type FooterContent struct {
	ID                 uuid.UUID     `json:"id"`
	CompanyDescription LocalizedText `json:"company_description"`
}

type SocialLink struct {
	ID       uuid.UUID `json:"id"`
	Platform string    `json:"platform"`
	URL      string    `json:"url"`
	Icon     IconTag   `json:"icon"`
}

type ContactInfo struct {
	ID     uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Phone  string    `json:"phone"`
	Phone2 string    `json:"phone_2,omitempty"`
}

type OtherService struct {
	ID          uuid.UUID     `json:"id"`
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
	Icon        IconTag       `json:"icon"`
}
