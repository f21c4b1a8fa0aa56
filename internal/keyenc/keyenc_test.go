package keyenc

import "testing"

const testKeyBin = "01001010010011010001101100111011001001111110110100101"
const testKeyB64 = "CUmjZ2T9pQ=="

func TestVectorFromSpec(t *testing.T) {
	v, err := DecodeBin(testKeyBin)
	if err != nil {
		t.Fatalf("DecodeBin: %v", err)
	}
	if got := Bin(v); got != testKeyBin {
		t.Fatalf("Bin round-trip = %q, want %q", got, testKeyBin)
	}
	if got := Base64(v); got != testKeyB64 {
		t.Fatalf("Base64 = %q, want %q", got, testKeyB64)
	}
}

func TestBase64DecodeRoundTrip(t *testing.T) {
	v, err := DecodeBin(testKeyBin)
	if err != nil {
		t.Fatal(err)
	}
	b64 := Base64(v)
	back, err := DecodeBase64(b64, len(testKeyBin))
	if err != nil {
		t.Fatalf("DecodeBase64: %v", err)
	}
	if Bin(back) != testKeyBin {
		t.Fatalf("DecodeBase64 round-trip = %q, want %q", Bin(back), testKeyBin)
	}
}

func TestDecodeBinRejectsBadChars(t *testing.T) {
	if _, err := DecodeBin("0102"); err == nil {
		t.Fatal("expected parse error for non 0/1 byte")
	}
}

func TestBase64ByteAlignedLength(t *testing.T) {
	v, err := DecodeBin("00000000")
	if err != nil {
		t.Fatal(err)
	}
	if got := Base64(v); got != "AA==" {
		t.Fatalf("Base64(8 zero bits) = %q, want AA==", got)
	}
}
