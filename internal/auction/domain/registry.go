package domain

// Kind identifica el tipo de evento de dominio tal y como llega por el bus interno.
type Kind string

// Los valores son parte del contrato con el productor de eventos.
const (
	AuctionStarted   Kind = "AuctionStartedEvent"
	AuctionExtended  Kind = "AuctionExtendEvent"
	AuctionKilled    Kind = "AuctionKilledEvent"
	AuctionEnded     Kind = "AuctionEndedEvent"
	AuctionLotsEnded Kind = "AuctionLotsEndedEvent"
	LotExtended      Kind = "LotExtendedEvent"
	LotWithdrawn     Kind = "LotWithdrawnEvent"
	BidPlaced        Kind = "BidPlacedEvent"
	UserLotWon       Kind = "UserLotWon"
)

// Kinds devuelve todos los tipos conocidos, en orden estable.
func Kinds() []Kind {
	return []Kind{
		AuctionStarted,
		AuctionExtended,
		AuctionKilled,
		AuctionEnded,
		AuctionLotsEnded,
		LotExtended,
		LotWithdrawn,
		BidPlaced,
		UserLotWon,
	}
}

// Tipos de mensaje públicos (campo "type" del mensaje saliente).
const (
	TypeAuctionStarted   = "auction_started"
	TypeAuctionExtended  = "auction_extended"
	TypeAuctionKilled    = "auction_killed"
	TypeAuctionEnded     = "auction_ended"
	TypeAuctionFinalized = "auction_finalized"
	TypeLotsEnded        = "lots_ended"
	TypeLotExtended      = "lot_extended"
	TypeLotWithdrawn     = "lot_withdrawn"
	TypeBidUpdate        = "notify_bid_update"
	TypeOutBid           = "out_bid"
)
