package nis

import (
	"fmt"
	"strconv"

	"github.com/xemtech/xemwallet/pkg/types"
)

// networkTimeResult is the node's network clock, in milliseconds.
type networkTimeResult struct {
	SendTimeStamp    int64 `json:"sendTimeStamp"`
	ReceiveTimeStamp int64 `json:"receiveTimeStamp"`
}

type heightResult struct {
	Height uint64 `json:"height"`
}

// NodeStatus is the heartbeat response.
type NodeStatus struct {
	Code    int    `json:"code"`
	Type    int    `json:"type"`
	Message string `json:"message"`
}

// AccountInfo is the on-chain state of an account. Balance is in µXEM.
type AccountInfo struct {
	Address         types.Address   `json:"address"`
	Balance         uint64          `json:"balance"`
	VestedBalance   uint64          `json:"vestedBalance"`
	Importance      float64         `json:"importance"`
	PublicKey       types.PublicKey `json:"publicKey"`
	HarvestedBlocks uint64          `json:"harvestedBlocks"`
}

// AccountMetaData carries the account's status and multisig relations.
type AccountMetaData struct {
	Status        string        `json:"status"`
	RemoteStatus  string        `json:"remoteStatus"`
	CosignatoryOf []AccountInfo `json:"cosignatoryOf"`
	Cosignatories []AccountInfo `json:"cosignatories"`
}

// AccountMetaDataPair is the /account/get response.
type AccountMetaDataPair struct {
	Account AccountInfo     `json:"account"`
	Meta    AccountMetaData `json:"meta"`
}

// MosaicDefinition is a mosaic definition as the node serves it, with
// stringified properties.
type MosaicDefinition struct {
	Creator     types.PublicKey   `json:"creator"`
	ID          types.MosaicID    `json:"id"`
	Description string            `json:"description"`
	Properties  []MosaicProperty  `json:"properties"`
	Levy        *types.MosaicLevy `json:"levy,omitempty"`
}

// MosaicProperty is one stringified property entry of a definition.
type MosaicProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Info converts the definition into the snapshot form the fee
// calculation consumes. The definition's initialSupply stands in until
// a supply query reports the current value.
func (d MosaicDefinition) Info() (types.MosaicInfo, error) {
	info := types.MosaicInfo{
		ID:         d.ID,
		Properties: make(map[string]string, len(d.Properties)),
	}
	for _, p := range d.Properties {
		info.Properties[p.Name] = p.Value
		switch p.Name {
		case "divisibility":
			v, err := strconv.ParseUint(p.Value, 10, 32)
			if err != nil {
				return types.MosaicInfo{}, fmt.Errorf("mosaic %s: bad divisibility %q: %w", d.ID.FullName(), p.Value, err)
			}
			info.Divisibility = uint32(v)
		case "initialSupply":
			v, err := strconv.ParseUint(p.Value, 10, 64)
			if err != nil {
				return types.MosaicInfo{}, fmt.Errorf("mosaic %s: bad initialSupply %q: %w", d.ID.FullName(), p.Value, err)
			}
			info.Supply = v
		}
	}
	return info, nil
}

type mosaicDefinitionMetaDataPair struct {
	Meta struct {
		ID int64 `json:"id"`
	} `json:"meta"`
	Mosaic MosaicDefinition `json:"mosaic"`
}

type mosaicDefinitionPage struct {
	Data []mosaicDefinitionMetaDataPair `json:"data"`
}

type mosaicSupplyResult struct {
	Supply uint64 `json:"supply"`
}

// announceRequest carries a serialized transaction and its signature,
// both hex-encoded.
type announceRequest struct {
	Data      string `json:"data"`
	Signature string `json:"signature"`
}

// announceSuccess is the result code of an accepted announcement.
const announceSuccess = 1

// AnnounceResult is the node's verdict on an announced transaction.
type AnnounceResult struct {
	Type            int    `json:"type"`
	Code            int    `json:"code"`
	Message         string `json:"message"`
	TransactionHash struct {
		Data types.Hash `json:"data"`
	} `json:"transactionHash"`
	InnerTransactionHash struct {
		Data types.Hash `json:"data"`
	} `json:"innerTransactionHash"`
}
