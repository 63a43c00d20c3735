package value

import "fmt"

// ContactAction is the call to action a visitor clicked. Each one opens the
// advisor chat with its own prefilled message.
type ContactAction string

const (
	ContactOffer                ContactAction = "oferta"
	ContactVisit                ContactAction = "visita"
	ContactHabiPaysAll          ContactAction = "habi-paga-todo"
	ContactClientPaysProcedures ContactAction = "cliente-paga-tramites"
)

//nolint:gochecknoglobals
var contactMessages = map[ContactAction]string{
	ContactOffer:                "¡Hola! Me interesa solicitar una oferta para mi propiedad.",
	ContactVisit:                "¡Hola! Me gustaría agendar una visita a sus oficinas.",
	ContactHabiPaysAll:          "Hola deseo solicitar mi oferta y que habi se encargue de los costos de tramites y notarias",
	ContactClientPaysProcedures: "Hola deseo solicitar mi oferta pero me hare cargo de los costos de tramites y notarias",
}

func ParseContactAction(s string) (ContactAction, error) {
	a := ContactAction(s)
	if _, ok := contactMessages[a]; !ok {
		return "", fmt.Errorf("unknown contact action %q", s)
	}

	return a, nil
}

func (a ContactAction) String() string {
	return string(a)
}

// Message is the chat text prefilled for the action.
func (a ContactAction) Message() string {
	return contactMessages[a]
}

// FallsBackToDefaultAdvisor reports whether the action may use the shared
// advisor line when the deal has none. Offer and visit requests need the
// deal's own advisor.
func (a ContactAction) FallsBackToDefaultAdvisor() bool {
	return a == ContactHabiPaysAll || a == ContactClientPaysProcedures
}

// CTAName is the analytics name of the button.
func (a ContactAction) CTAName() string {
	switch a {
	case ContactOffer:
		return "solicitar_oferta"
	case ContactVisit:
		return "agendar_visita"
	case ContactHabiPaysAll:
		return "habi_paga_todo"
	case ContactClientPaysProcedures:
		return "cliente_paga_tramites"
	default:
		return string(a)
	}
}

// Location is the page section the button sits in.
func (a ContactAction) Location() string {
	switch a {
	case ContactOffer:
		return "hero_section"
	case ContactVisit:
		return "visit_section"
	default:
		return "service_cards"
	}
}
