package card

import "fmt"

// StandardFoiling is assumed for printings whose feed entry carries no
// foiling code.
const StandardFoiling = "S"

// Variant is one specific printing of a card: an identifier within a set at
// a given rarity and foiling. It carries the owning card's full name as a
// back-link rather than duplicating the card record.
type Variant struct {
	Identifier string `json:"identifier"`
	Set        string `json:"set"`
	Rarity     string `json:"rarity"`
	Foiling    string `json:"foiling"`
	CardName   string `json:"card_name"`
}

// UID is the compact identifier-rarity-foiling code for the printing.
func (v Variant) UID() string {
	return fmt.Sprintf("%s-%s-%s", v.Identifier, v.Rarity, v.Foiling)
}

func (v Variant) String() string {
	return fmt.Sprintf("%s [%s]", v.CardName, v.UID())
}
