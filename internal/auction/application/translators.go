package application

import "github.com/davicafu/apollo-events/internal/auction/domain"

// Traductores puros: evento decodificado -> salidas en orden de publicación.
// Cada mensaje recibe un id nuevo del generador.

func TranslateAuctionStarted(evt domain.AuctionStartedEvent, ids domain.IDGenerator) []domain.Output {
	return []domain.Output{{
		Channel: domain.AuctionChannel(evt.AuctionID),
		Message: domain.PublishedAuctionMessage{
			AuctionUUID:   evt.AuctionID,
			PublishedName: evt.PublishedName,
			Type:          domain.TypeAuctionStarted,
			ID:            ids.NewID(),
		},
	}}
}

func TranslateAuctionExtended(evt domain.AuctionExtendedEvent, ids domain.IDGenerator) []domain.Output {
	return auctionOutput(evt.AuctionID, domain.TypeAuctionExtended, ids)
}

func TranslateAuctionKilled(evt domain.AuctionKilledEvent, ids domain.IDGenerator) []domain.Output {
	return auctionOutput(evt.AuctionID, domain.TypeAuctionKilled, ids)
}

func TranslateAuctionLotsEnded(evt domain.AuctionLotsEndedEvent, ids domain.IDGenerator) []domain.Output {
	return auctionOutput(evt.AuctionID, domain.TypeLotsEnded, ids)
}

// TranslateAuctionEnded emite auction_ended y, después, auction_finalized al canal "user".
func TranslateAuctionEnded(evt domain.AuctionEndedEvent, ids domain.IDGenerator) []domain.Output {
	return []domain.Output{
		{
			Channel: domain.AuctionChannel(evt.AuctionID),
			Message: domain.PublishedAuctionMessage{
				AuctionUUID:   evt.AuctionID,
				PublishedName: evt.PublishedName,
				Type:          domain.TypeAuctionEnded,
				ID:            ids.NewID(),
			},
		},
		{
			Channel: domain.UserChannel,
			Message: domain.AuctionFinalizedMessage{
				AuctionUUID: evt.AuctionID,
				AuctionName: evt.PublishedName,
				Type:        domain.TypeAuctionFinalized,
				ID:          ids.NewID(),
			},
		},
	}
}

func TranslateLotExtended(evt domain.LotExtendedEvent, ids domain.IDGenerator) []domain.Output {
	return lotOutput(evt.AuctionID, evt.LotNumber, domain.TypeLotExtended, ids)
}

func TranslateLotWithdrawn(evt domain.LotWithdrawnEvent, ids domain.IDGenerator) []domain.Output {
	return lotOutput(evt.AuctionID, evt.LotNumber, domain.TypeLotWithdrawn, ids)
}

// TranslateBidPlaced emite notify_bid_update y, si otro pujador queda superado, out_bid.
func TranslateBidPlaced(evt domain.BidPlacedEvent, ids domain.IDGenerator) []domain.Output {
	current := evt.CurrentBid
	outputs := []domain.Output{{
		Channel: domain.LotChannel(evt.AuctionID, evt.LotNumber),
		Message: domain.BidUpdateMessage{
			AuctionUUID: evt.AuctionID,
			LotNumber:   evt.LotNumber,
			Type:        domain.TypeBidUpdate,
			CurrentBid: domain.CurrentBid{
				Amount:    current.Amount.Value,
				UserID:    current.UserID,
				Currency:  current.Amount.Currency,
				CreatedAt: current.CreatedAt,
			},
			ID: ids.NewID(),
		},
	}}

	if evt.OutBids() {
		outputs = append(outputs, domain.Output{
			Channel: domain.UserChannelFor(evt.PreviousBid.UserID),
			Message: domain.OutBidMessage{
				AuctionUUID: evt.AuctionID,
				LotUUID:     evt.LotID,
				LotName:     evt.LotTitle,
				Type:        domain.TypeOutBid,
				ID:          ids.NewID(),
			},
		})
	}
	return outputs
}

func TranslateUserLotWon(evt domain.UserLotWonEvent, ids domain.IDGenerator) []domain.Output {
	return []domain.Output{{
		Channel: domain.LotWonChannel,
		Message: domain.LotWonMessage{
			UserEmail: evt.Email,
			LotNumber: evt.Number,
			LotTitle:  evt.Title,
			Currency:  evt.Currency,
			BidAmount: evt.Amount,
			ID:        ids.NewID(),
		},
	}}
}

func auctionOutput(auctionID, msgType string, ids domain.IDGenerator) []domain.Output {
	return []domain.Output{{
		Channel: domain.AuctionChannel(auctionID),
		Message: domain.AuctionMessage{
			AuctionUUID: auctionID,
			Type:        msgType,
			ID:          ids.NewID(),
		},
	}}
}

func lotOutput(auctionID string, lotNumber domain.Number, msgType string, ids domain.IDGenerator) []domain.Output {
	return []domain.Output{{
		Channel: domain.LotChannel(auctionID, lotNumber),
		Message: domain.LotMessage{
			AuctionUUID: auctionID,
			LotNumber:   lotNumber,
			Type:        msgType,
			ID:          ids.NewID(),
		},
	}}
}
