package domain

// Message es cualquier registro publicable. Las claves JSON son contrato público.
type Message interface {
	MessageID() string
	MessageType() string
}

// Output es una instrucción de publicación: canal + mensaje.
type Output struct {
	Channel string
	Message Message
}

// AuctionMessage cubre auction_extended, auction_killed y lots_ended.
type AuctionMessage struct {
	AuctionUUID string `json:"auctionUuid"`
	Type        string `json:"type"`
	ID          string `json:"id"`
}

func (m AuctionMessage) MessageID() string   { return m.ID }
func (m AuctionMessage) MessageType() string { return m.Type }

// PublishedAuctionMessage cubre auction_started y auction_ended.
type PublishedAuctionMessage struct {
	AuctionUUID   string  `json:"auctionUuid"`
	PublishedName *string `json:"publishedName"`
	Type          string  `json:"type"`
	ID            string  `json:"id"`
}

func (m PublishedAuctionMessage) MessageID() string   { return m.ID }
func (m PublishedAuctionMessage) MessageType() string { return m.Type }

type AuctionFinalizedMessage struct {
	AuctionUUID string  `json:"auctionUuid"`
	AuctionName *string `json:"auctionName"`
	Type        string  `json:"type"`
	ID          string  `json:"id"`
}

func (m AuctionFinalizedMessage) MessageID() string   { return m.ID }
func (m AuctionFinalizedMessage) MessageType() string { return m.Type }

// LotMessage cubre lot_extended y lot_withdrawn.
type LotMessage struct {
	AuctionUUID string `json:"auctionUuid"`
	LotNumber   Number `json:"lotNumber"`
	Type        string `json:"type"`
	ID          string `json:"id"`
}

func (m LotMessage) MessageID() string   { return m.ID }
func (m LotMessage) MessageType() string { return m.Type }

type CurrentBid struct {
	Amount    Number `json:"amount"`
	UserID    string `json:"userId"`
	Currency  string `json:"currency"`
	CreatedAt string `json:"createdAt"`
}

type BidUpdateMessage struct {
	AuctionUUID string     `json:"auctionUuid"`
	LotNumber   Number     `json:"lotNumber"`
	Type        string     `json:"type"`
	CurrentBid  CurrentBid `json:"currentBid"`
	ID          string     `json:"id"`
}

func (m BidUpdateMessage) MessageID() string   { return m.ID }
func (m BidUpdateMessage) MessageType() string { return m.Type }

type OutBidMessage struct {
	AuctionUUID string  `json:"auctionUuid"`
	LotUUID     *string `json:"lotUuid"`
	LotName     *string `json:"lotName"`
	Type        string  `json:"type"`
	ID          string  `json:"id"`
}

func (m OutBidMessage) MessageID() string   { return m.ID }
func (m OutBidMessage) MessageType() string { return m.Type }

// LotWonMessage no lleva campo "type" en el cable.
type LotWonMessage struct {
	UserEmail *string `json:"userEmail"`
	LotNumber *Number `json:"lotNumber"`
	LotTitle  *string `json:"lotTitle"`
	Currency  *string `json:"currency"`
	BidAmount *Number `json:"bidAmount"`
	ID        string  `json:"id"`
}

func (m LotWonMessage) MessageID() string { return m.ID }

// MessageType devuelve "" porque el mensaje no tiene tipo público.
func (m LotWonMessage) MessageType() string { return "" }
