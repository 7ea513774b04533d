package types

import "testing"

func TestBloomAddAndContains(t *testing.T) {
	var bloom Bloom
	data := []byte("deposit")
	BloomAdd(&bloom, data)

	if !BloomContains(bloom, data) {
		t.Fatal("bloom should contain the data it was built from")
	}
	if BloomContains(bloom, []byte("withdraw")) {
		t.Fatal("bloom should not (usually) contain unrelated data")
	}
}

func TestLogsBloomCoversAddressAndTopics(t *testing.T) {
	addr := HexToAddress("0x00000000000000000000000000000000000042")
	topic := HexToHash("0x1111111111111111111111111111111111111111111111111111111111111")
	logs := []*Log{{Address: addr, Topics: []Hash{topic}}}

	bloom := LogsBloom(logs)
	if !BloomContains(bloom, addr.Bytes()) {
		t.Fatal("bloom should contain the log's address")
	}
	if !BloomContains(bloom, topic.Bytes()) {
		t.Fatal("bloom should contain the log's topic")
	}
	if !BloomMatchesLog(bloom, logs[0]) {
		t.Fatal("BloomMatchesLog should agree with the bits set above")
	}
}

func TestCreateBloomOrsReceipts(t *testing.T) {
	addr1 := HexToAddress("0x00000000000000000000000000000000000001")
	addr2 := HexToAddress("0x00000000000000000000000000000000000002")

	r1 := &Receipt{Logs: []*Log{{Address: addr1}}}
	r1.Bloom = LogsBloom(r1.Logs)
	r2 := &Receipt{Logs: []*Log{{Address: addr2}}}
	r2.Bloom = LogsBloom(r2.Logs)

	combined := CreateBloom([]*Receipt{r1, r2})
	if !BloomContains(combined, addr1.Bytes()) || !BloomContains(combined, addr2.Bytes()) {
		t.Fatal("combined bloom should contain both receipts' addresses")
	}
}

func TestBloomMatchesFilter(t *testing.T) {
	addr := HexToAddress("0x00000000000000000000000000000000000042")
	var bloom Bloom
	BloomAdd(&bloom, addr.Bytes())

	matching := &LogFilter{Addresses: []Address{addr}}
	if !BloomMatchesFilter(bloom, matching) {
		t.Fatal("bloom should match a filter on an address it contains")
	}

	other := HexToAddress("0x00000000000000000000000000000000000099")
	nonMatching := &LogFilter{Addresses: []Address{other}}
	if BloomMatchesFilter(bloom, nonMatching) {
		t.Fatal("bloom should not match a filter on an address it doesn't contain")
	}
}
