package handler

import (
	"html/template"
	"time"

	"github.com/google/uuid"

	"github.com/srgjo27/epic_events/internal/core/domain"
	"github.com/srgjo27/epic_events/internal/core/i18n"
	"github.com/srgjo27/epic_events/internal/core/services"
)

const fallbackHeroImage = "https://images.unsplash.com/photo-1511882150382-421056c89033?auto=format&fit=crop&q=80"

type heroView struct {
	Title      string
	Subtitle   string
	Background string
}

type gameView struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Image        string
	CategorySlug string
	Selected     bool
}

type categoryView struct {
	Name string
	Slug string
}

type slideView struct {
	Index int
	Name  string
	Date  string
	Image string
}

type serviceView struct {
	Title       string
	Description string
	Icon        template.HTML
}

type socialView struct {
	Platform string
	URL      string
	Icon     template.HTML
}

type optionView struct {
	Value    string
	Label    string
	Selected bool
}

type bookingView struct {
	Form       domain.BookingForm
	Submitting bool
	Selected   []gameView
	EventTypes []optionView
	Loading    bool
	Contact    *domain.ContactInfo
}

type pageData struct {
	Lang       domain.Language
	T          i18n.Translator
	Loading    bool
	Hero       heroView
	Categories []categoryView
	Games      []gameView
	GamesReady bool
	Slides     []slideView
	IntervalMS int64
	Services   []serviceView
	Booking    bookingView
	Footer     string
	Social     []socialView
	Toasts     []domain.Notification
	Year       int
}

func buildPage(page *services.PageView, session *services.Session, interval time.Duration, now time.Time) pageData {
	lang := session.Language()
	t := i18n.Translator{Lang: lang}

	data := pageData{
		Lang:       lang,
		T:          t,
		Loading:    page.Loading(),
		IntervalMS: interval.Milliseconds(),
		Year:       now.Year(),
	}

	data.Hero = heroView{
		Title:      t.T("hero.title"),
		Subtitle:   t.T("hero.subtitle"),
		Background: fallbackHeroImage,
	}
	if res := page.Hero.Result(); res.Ready() && res.Data != nil {
		if title := t.Text(res.Data.Title); title != "" {
			data.Hero.Title = title
		}
		if subtitle := t.Text(res.Data.Subtitle); subtitle != "" {
			data.Hero.Subtitle = subtitle
		}
		if res.Data.BackgroundImage != "" {
			data.Hero.Background = res.Data.BackgroundImage
		}
	}

	slugs := make(map[uuid.UUID]string)
	if res := page.Categories.Result(); res.Ready() {
		for _, c := range res.Data {
			slugs[c.ID] = c.Slug
			data.Categories = append(data.Categories, categoryView{Name: t.Text(c.Name), Slug: c.Slug})
		}
	}

	selection := session.Selection()
	if res := page.Games.Result(); res.Ready() {
		data.GamesReady = true
		for _, g := range res.Data {
			data.Games = append(data.Games, newGameView(t, g, slugs, selection.Contains(g.ID)))
		}
	}

	if res := page.Gallery.Result(); res.Ready() {
		for i, e := range res.Data {
			data.Slides = append(data.Slides, slideView{
				Index: i,
				Name:  e.Name,
				Date:  e.Date.Format("January 2, 2006"),
				Image: e.Image,
			})
		}
	}

	if res := page.Services.Result(); res.Ready() {
		for _, s := range res.Data {
			data.Services = append(data.Services, serviceView{
				Title:       t.Text(s.Title),
				Description: t.Text(s.Description),
				Icon:        renderIcon(s.Icon, 32),
			})
		}
	}

	data.Footer = t.T("hero.title")
	if res := page.Footer.Result(); res.Ready() && res.Data != nil {
		if d := t.Text(res.Data.CompanyDescription); d != "" {
			data.Footer = d
		}
	}

	if res := page.Social.Result(); res.Ready() {
		for _, l := range res.Data {
			data.Social = append(data.Social, socialView{Platform: l.Platform, URL: l.URL, Icon: renderIcon(l.Icon, 20)})
		}
	}

	data.Booking = newBookingView(t, page, session)
	data.Toasts = session.Toasts()

	return data
}

func newGameView(t i18n.Translator, g domain.GameOffering, slugs map[uuid.UUID]string, selected bool) gameView {
	v := gameView{
		ID:          g.ID,
		Name:        t.Text(g.Name),
		Description: t.Text(g.Description),
		Image:       g.Image,
		Selected:    selected,
	}

	if g.CategoryID != nil {
		v.CategorySlug = slugs[*g.CategoryID]
	}

	return v
}

func newBookingView(t i18n.Translator, page *services.PageView, session *services.Session) bookingView {
	flow := session.Booking()
	form := flow.Form()

	v := bookingView{
		Form:       form,
		Submitting: flow.State() == domain.SubmissionSubmitting,
		Loading:    page.BookingSection().Loading(),
	}

	for _, g := range session.Selection().Games() {
		v.Selected = append(v.Selected, newGameView(t, g, nil, true))
	}

	for _, e := range domain.EventTypes {
		v.EventTypes = append(v.EventTypes, optionView{
			Value:    string(e),
			Label:    t.T("booking." + string(e)),
			Selected: form.EventType == string(e),
		})
	}

	if res := page.Contact.Result(); res.Ready() {
		v.Contact = res.Data
	}

	return v
}
