package chain

import (
	"context"
)

// MintRequest asks the signer service to mint a token for a newly
// registered record. RequestID is a caller-supplied idempotency key so the
// call is safe to retry.
type MintRequest struct {
	RequestID       string `json:"request_id"`
	TokenID         string `json:"token_id"`
	ContractAddress string `json:"contract_address"`
	Owner           string `json:"owner"`
	MetadataURI     string `json:"metadata_uri,omitempty"`
}

// TransferRequest asks the signer service to move a token between users
type TransferRequest struct {
	RequestID       string `json:"request_id"`
	TokenID         string `json:"token_id"`
	ContractAddress string `json:"contract_address"`
	FromUser        string `json:"from_user"`
	ToUser          string `json:"to_user"`
}

// Service defines the interface to the external NFT chain. Both operations
// are asynchronous on the chain side, fallible, and idempotent by request
// id; wallet key management lives entirely behind the signer service.
//
//go:generate mockgen -source=chain.go -destination=../mocks/chain.go -package=mocks -mock_names=Service=MockChainService
type Service interface {
	// Mint submits a mint transaction and returns its hash
	Mint(ctx context.Context, req MintRequest) (txHash string, err error)
	// Transfer submits a transfer transaction and returns its hash
	Transfer(ctx context.Context, req TransferRequest) (txHash string, err error)
}
