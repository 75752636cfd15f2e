package domain

// Estos son los contratos de entrada. Los campos puntero son opcionales:
// nil se propaga como null en el mensaje saliente, nunca como "".

type AuctionStartedEvent struct {
	AuctionID     string  `json:"auction_id"`
	PublishedName *string `json:"published_name"`
}

type AuctionExtendedEvent struct {
	AuctionID string `json:"auction_id"`
}

type AuctionKilledEvent struct {
	AuctionID string `json:"auction_id"`
}

type AuctionEndedEvent struct {
	AuctionID     string  `json:"auction_id"`
	PublishedName *string `json:"published_name"`
}

type AuctionLotsEndedEvent struct {
	AuctionID string `json:"auction_id"`
}

type LotExtendedEvent struct {
	AuctionID string `json:"auction_id"`
	LotNumber Number `json:"lot_number"`
}

type LotWithdrawnEvent struct {
	AuctionID string `json:"auction_id"`
	LotNumber Number `json:"lot_number"`
}

// Amount conserva el valor numérico tal cual llegó (sin pasar por float64).
type Amount struct {
	Value    Number `json:"value"`
	Currency string `json:"currency"`
}

type BidRecord struct {
	Amount    Amount `json:"amount"`
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
}

type BidPlacedEvent struct {
	AuctionID   string     `json:"auction_id"`
	LotNumber   Number     `json:"lot_number"`
	LotID       *string    `json:"lot_id"`
	LotTitle    *string    `json:"lot_title"`
	CurrentBid  BidRecord  `json:"current_bid"`
	PreviousBid *BidRecord `json:"previous_bid"`
}

// OutBids indica si la puja actual desplaza a otro pujador.
// Solo se compara la identidad del pujador, no el importe.
func (e BidPlacedEvent) OutBids() bool {
	return e.PreviousBid != nil && e.PreviousBid.UserID != "" && e.PreviousBid.UserID != e.CurrentBid.UserID
}

type UserLotWonEvent struct {
	Email    *string `json:"email"`
	Number   *Number `json:"number"`
	Title    *string `json:"title"`
	Currency *string `json:"currency"`
	Amount   *Number `json:"amount"`
}
