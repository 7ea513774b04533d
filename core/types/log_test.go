package types

import "testing"

func TestEncodeLogRLPTooManyTopics(t *testing.T) {
	l := &Log{Topics: make([]Hash, MaxTopicsPerLog+1)}
	if _, err := EncodeLogRLP(l); err == nil {
		t.Fatal("expected an error for more than MaxTopicsPerLog topics")
	}
}

func TestEncodeLogRLPNonEmpty(t *testing.T) {
	l := &Log{
		Address: HexToAddress("0x01"),
		Topics:  []Hash{HexToHash("0xaa")},
		Data:    []byte("payload"),
	}
	enc, err := EncodeLogRLP(l)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(enc) == 0 {
		t.Fatal("expected a non-empty RLP encoding")
	}
}

func TestLogJSONRoundTrip(t *testing.T) {
	l := &Log{
		Address:     HexToAddress("0x00000000000000000000000000000000000042"),
		Topics:      []Hash{HexToHash("0xaa"), HexToHash("0xbb")},
		Data:        []byte{0x01, 0x02, 0x03},
		BlockNumber: 100,
		TxHash:      HexToHash("0xcc"),
		TxIndex:     2,
		BlockHash:   HexToHash("0xdd"),
		Index:       5,
		Removed:     true,
	}

	encoded, err := MarshalLogJSON(l)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded, err := UnmarshalLogJSON(encoded)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded.Address != l.Address || decoded.BlockNumber != l.BlockNumber || decoded.Removed != l.Removed {
		t.Fatalf("round-tripped log differs: got %+v, want %+v", decoded, l)
	}
	if len(decoded.Topics) != len(l.Topics) || decoded.Topics[0] != l.Topics[0] {
		t.Fatal("topics did not round-trip")
	}
	if string(decoded.Data) != string(l.Data) {
		t.Fatal("data did not round-trip")
	}
}

func TestFilterMatchAddressAndTopic(t *testing.T) {
	addr := HexToAddress("0x01")
	topic := HexToHash("0xaa")
	l := &Log{Address: addr, Topics: []Hash{topic}, BlockNumber: 10}

	f := &LogFilter{Addresses: []Address{addr}, Topics: [][]Hash{{topic}}}
	if !FilterMatch(l, f) {
		t.Fatal("log should match a filter on its own address and topic")
	}

	other := &LogFilter{Addresses: []Address{HexToAddress("0x99")}}
	if FilterMatch(l, other) {
		t.Fatal("log should not match a filter for a different address")
	}
}

func TestFilterMatchBlockRange(t *testing.T) {
	l := &Log{BlockNumber: 50}
	inRange := &LogFilter{FromBlock: 10, ToBlock: 100}
	if !FilterMatch(l, inRange) {
		t.Fatal("log at block 50 should match a 10-100 range")
	}

	outOfRange := &LogFilter{FromBlock: 60}
	if FilterMatch(l, outOfRange) {
		t.Fatal("log at block 50 should not match a filter starting at block 60")
	}
}
