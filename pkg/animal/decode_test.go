package animal

import "testing"

func TestDecodeRecords(t *testing.T) {
	payload := []byte(`[
		{"name": "Fox", "characteristics": {"diet": "Omnivore"}},
		{"name": "Owl"}
	]`)

	records, err := Decode(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if got := records[0].Characteristic(CharacteristicDiet); got != "Omnivore" {
		t.Fatalf("expected diet to survive decoding, got %q", got)
	}
}

func TestDecodeRejectsMalformedPayloads(t *testing.T) {
	for _, payload := range [][]byte{nil, []byte("{"), []byte(`{"name":"Fox"}`)} {
		if _, err := Decode(payload); err == nil {
			t.Fatalf("expected error for payload %q", payload)
		}
	}
}
