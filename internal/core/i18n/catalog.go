package i18n

import "github.com/srgjo27/epic_events/internal/core/domain"

var catalog = map[domain.Language]map[string]string{
	domain.LanguageEnglish: {
		"nav.home":    "Home",
		"nav.games":   "Games",
		"nav.gallery": "Gallery",
		"nav.bookNow": "Book Now",

		"language.toggle": "தமிழ்",

		"hero.title":        "Level Up Your Events",
		"hero.subtitle":     "Transform any gathering into an epic gaming adventure. Professional equipment, expert hosting, unforgettable memories.",
		"hero.bookNow":      "Book Now",
		"hero.exploreGames": "Explore Games",

		"games.title":    "Our Gaming Experiences",
		"games.subtitle": "Choose from our wide selection of gaming experiences, each designed to provide maximum entertainment for all skill levels.",
		"games.all":      "All",
		"games.select":   "Select",
		"games.selected": "Selected",
		"games.empty":    "No games available right now.",

		"gallery.title":    "Past Events Gallery",
		"gallery.subtitle": "Take a look at some of our most memorable gaming events and celebrations.",
		"gallery.previous": "Previous",
		"gallery.next":     "Next",

		"services.title":    "Other Services",
		"services.subtitle": "Everything else you need to make your event a hit.",

		"booking.title":           "Book Your Epic Gaming Event",
		"booking.name":            "Name",
		"booking.email":           "Email",
		"booking.phone":           "Phone",
		"booking.date":            "Event Date",
		"booking.eventType":       "Event Type",
		"booking.requirements":    "Special Requirements",
		"booking.numberOfPeople":  "Number of People",
		"booking.timeSlot":        "Time Slot",
		"booking.selectedGames":   "Selected Games",
		"booking.noGamesSelected": "No games selected yet. Pick some from the games section.",
		"booking.clearSelection":  "Clear selection",
		"booking.submit":          "Submit Booking Request",
		"booking.submitting":      "Submitting...",
		"booking.selectEventType": "Select event type",
		"booking.birthday":        "Birthday Party",
		"booking.corporate":       "Corporate Event",
		"booking.tournament":      "Gaming Tournament",
		"booking.other":           "Other",
		"booking.success":         "Booking request submitted successfully! We will contact you soon.",
		"booking.failure":         "Failed to submit booking request. Please try again.",
		"booking.missingFields":   "Please fill in all required fields.",
		"booking.selectGames":     "Please select at least one game.",
		"booking.invalidEvent":    "Please choose a valid event type.",
		"booking.invalidPeople":   "Number of people must be a positive number.",
		"booking.inProgress":      "Your booking request is already being submitted.",

		"contact.title":   "Contact Information",
		"contact.emailUs": "Email Us",
		"contact.callUs":  "Call Us",

		"footer.rights": "All rights reserved.",
	},
	domain.LanguageTamil: {
		"nav.home":    "முகப்பு",
		"nav.games":   "விளையாட்டுகள்",
		"nav.gallery": "காட்சியகம்",
		"nav.bookNow": "இப்போது முன்பதிவு செய்க",

		"language.toggle": "English",

		"hero.title":        "உங்கள் நிகழ்வுகளை மேம்படுத்துங்கள்",
		"hero.subtitle":     "எந்த கூட்டத்தையும் ஒரு எபிக் கேமிங் சாகசமாக மாற்றுங்கள். தொழில்முறை உபகரணங்கள், நிபுணர் ஹோஸ்டிங், மறக்க முடியாத நினைவுகள்.",
		"hero.bookNow":      "இப்போது முன்பதிவு செய்க",
		"hero.exploreGames": "விளையாட்டுகளை ஆராயுங்கள்",

		"games.title":    "எங்கள் கேமிங் அனுபவங்கள்",
		"games.subtitle": "அனைத்து திறன் மட்டங்களுக்கும் அதிகபட்ச பொழுதுபோக்கை வழங்க வடிவமைக்கப்பட்ட எங்கள் பரந்த கேமிங் அனுபவங்களிலிருந்து தேர்வு செய்யவும்.",
		"games.all":      "அனைத்தும்",
		"games.select":   "தேர்ந்தெடு",
		"games.selected": "தேர்ந்தெடுக்கப்பட்டது",
		"games.empty":    "தற்போது விளையாட்டுகள் எதுவும் இல்லை.",

		"gallery.title":    "கடந்த நிகழ்வுகள் காட்சியகம்",
		"gallery.subtitle": "எங்கள் மறக்க முடியாத கேமிங் நிகழ்வுகள் மற்றும் கொண்டாட்டங்களில் சிலவற்றைப் பாருங்கள்.",
		"gallery.previous": "முந்தைய",
		"gallery.next":     "அடுத்து",

		"services.title":    "பிற சேவைகள்",
		"services.subtitle": "உங்கள் நிகழ்வை வெற்றிகரமாக்க தேவையான அனைத்தும்.",

		"booking.title":           "உங்கள் எபிக் கேமிங் நிகழ்வை முன்பதிவு செய்யுங்கள்",
		"booking.name":            "பெயர்",
		"booking.email":           "மின்னஞ்சல்",
		"booking.phone":           "தொலைபேசி",
		"booking.date":            "நிகழ்வு தேதி",
		"booking.eventType":       "நிகழ்வு வகை",
		"booking.requirements":    "சிறப்பு தேவைகள்",
		"booking.numberOfPeople":  "நபர்களின் எண்ணிக்கை",
		"booking.timeSlot":        "நேர இடைவெளி",
		"booking.selectedGames":   "தேர்ந்தெடுக்கப்பட்ட விளையாட்டுகள்",
		"booking.noGamesSelected": "இன்னும் விளையாட்டுகள் தேர்ந்தெடுக்கப்படவில்லை. விளையாட்டுகள் பகுதியில் இருந்து தேர்வு செய்யவும்.",
		"booking.clearSelection":  "தேர்வை அழி",
		"booking.submit":          "முன்பதிவு கோரிக்கையை சமர்ப்பிக்கவும்",
		"booking.submitting":      "சமர்ப்பிக்கிறது...",
		"booking.selectEventType": "நிகழ்வு வகையைத் தேர்ந்தெடுக்கவும்",
		"booking.birthday":        "பிறந்தநாள் விழா",
		"booking.corporate":       "கார்ப்பரேட் நிகழ்வு",
		"booking.tournament":      "கேமிங் போட்டி",
		"booking.other":           "மற்றவை",
		"booking.success":         "முன்பதிவு கோரிக்கை வெற்றிகரமாக சமர்ப்பிக்கப்பட்டது! விரைவில் உங்களைத் தொடர்புகொள்வோம்.",
		"booking.failure":         "முன்பதிவு கோரிக்கையை சமர்ப்பிக்க முடியவில்லை. மீண்டும் முயற்சிக்கவும்.",
		"booking.missingFields":   "தேவையான அனைத்து புலங்களையும் நிரப்பவும்.",
		"booking.selectGames":     "குறைந்தது ஒரு விளையாட்டையாவது தேர்ந்தெடுக்கவும்.",
		"booking.invalidEvent":    "சரியான நிகழ்வு வகையைத் தேர்ந்தெடுக்கவும்.",
		"booking.invalidPeople":   "நபர்களின் எண்ணிக்கை நேர்மறை எண்ணாக இருக்க வேண்டும்.",
		"booking.inProgress":      "உங்கள் முன்பதிவு கோரிக்கை ஏற்கனவே சமர்ப்பிக்கப்படுகிறது.",

		"contact.title":   "தொடர்பு தகவல்",
		"contact.emailUs": "எங்களுக்கு மின்னஞ்சல் அனுப்புங்கள்",
		"contact.callUs":  "எங்களை அழைக்கவும்",

		"footer.rights": "அனைத்து உரிமைகளும் பாதுகாக்கப்பட்டவை.",
	},
}
