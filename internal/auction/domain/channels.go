package domain

import "fmt"

const (
	UserChannel   = "user"
	LotWonChannel = "users.LotWon"
)

// AuctionChannel -> auction.<auctionId>
func AuctionChannel(auctionID string) string {
	return fmt.Sprintf("auction.%s", auctionID)
}

// LotChannel -> auction.<auctionId>.lot.<lotNumber>
func LotChannel(auctionID string, lotNumber Number) string {
	return fmt.Sprintf("auction.%s.lot.%s", auctionID, lotNumber.String())
}

// UserChannelFor -> user.<userId>
func UserChannelFor(userID string) string {
	return fmt.Sprintf("%s.%s", UserChannel, userID)
}
