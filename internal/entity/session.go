package entity

import (
	"github.com/ethereum/go-ethereum/common"
)

// Receipt is the confirmation record of an included transaction.
type Receipt struct {
	TxHash          common.Hash
	Success         bool
	ContractAddress common.Address
	BlockNumber     uint64
}

// SessionRecord is the persisted form of a bound game session.
type SessionRecord struct {
	Account         string `json:"account"`
	ContractAddress string `json:"contract_address"`
	Seat            Seat   `json:"seat"`
	BetAmount       string `json:"bet_amount"`
}
