package tinknumseq

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/google/tink/go/keyset"
	tinkpb "github.com/google/tink/go/proto/tink_go_proto"
	"github.com/vdparikh/numseq"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// KeyTemplate creates a key template for single-round numeric sequence encoding.
// This allows users to create a handle with a single line:
//
//	handle, err := keyset.NewHandle(tinknumseq.KeyTemplate())
func KeyTemplate() *tinkpb.KeyTemplate {
	kt, err := KeyTemplateWithRounds(numseq.DefaultRounds)
	if err != nil {
		panic(fmt.Sprintf("tinknumseq: default key template: %v", err))
	}
	return kt
}

// KeyTemplateWithRounds creates a key template for the given number of rounds.
func KeyTemplateWithRounds(rounds uint32) (*tinkpb.KeyTemplate, error) {
	value, err := serializeRounds(rounds)
	if err != nil {
		return nil, err
	}
	return &tinkpb.KeyTemplate{
		TypeUrl:          TypeURL,
		Value:            value,
		OutputPrefixType: tinkpb.OutputPrefixType_RAW,
	}, nil
}

// NewKeysetHandle creates a keyset handle holding a single enabled key for the
// given number of rounds. Unlike keyset.NewHandle it does not require the
// KeyManager to be registered first; New does.
func NewKeysetHandle(rounds uint32) (*keyset.Handle, error) {
	value, err := serializeRounds(rounds)
	if err != nil {
		return nil, err
	}

	keyIDBytes := make([]byte, 4)
	if _, err := rand.Read(keyIDBytes); err != nil {
		return nil, fmt.Errorf("failed to generate key ID: %w", err)
	}
	keyID := binary.BigEndian.Uint32(keyIDBytes)

	ks := &tinkpb.Keyset{
		PrimaryKeyId: keyID,
		Key: []*tinkpb.Keyset_Key{{
			KeyData: &tinkpb.KeyData{
				TypeUrl:         TypeURL,
				Value:           value,
				KeyMaterialType: tinkpb.KeyData_ASYMMETRIC_PUBLIC,
			},
			KeyId:            keyID,
			Status:           tinkpb.KeyStatusType_ENABLED,
			OutputPrefixType: tinkpb.OutputPrefixType_RAW,
		}},
	}

	return keyset.NewHandleWithNoSecrets(ks)
}

func serializeRounds(rounds uint32) ([]byte, error) {
	if rounds == 0 || rounds > numseq.MaxRounds {
		return nil, fmt.Errorf("invalid round count %d (must be 1 to %d)", rounds, numseq.MaxRounds)
	}
	value, err := proto.Marshal(wrapperspb.UInt32(rounds))
	if err != nil {
		return nil, fmt.Errorf("failed to serialize parameters: %w", err)
	}
	return value, nil
}
