package leveldata

import "testing"

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="40" height="30" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="3">
 <objectgroup id="2" name="Bases">
  <object id="1" name="cell" x="64" y="64" width="128" height="96"/>
  <object id="2" name="virus" x="1000" y="800" width="64" height="64"/>
 </objectgroup>
</map>
`

func TestParseInitPayload(t *testing.T) {
	data, err := ParseInitPayload(testTMX, 0, 0)
	if err != nil {
		t.Fatalf("ParseInitPayload() error = %v", err)
	}
	if data.Width != 1280 || data.Height != 960 {
		t.Errorf("bounds = %vx%v, want 1280x960", data.Width, data.Height)
	}
	if len(data.Regions) != 2 {
		t.Fatalf("regions = %d, want 2", len(data.Regions))
	}
	if r := data.Regions[0]; r.Name != "cell" || r.Layer != "Bases" || r.W != 128 {
		t.Errorf("first region = %+v", r)
	}
}

func TestParseInitPayloadEmpty(t *testing.T) {
	data, err := ParseInitPayload("  ", 800, 600)
	if err != nil {
		t.Fatalf("ParseInitPayload() error = %v", err)
	}
	if data.Width != 800 || data.Height != 600 {
		t.Errorf("bounds = %vx%v, want fallback 800x600", data.Width, data.Height)
	}
}

func TestParseInitPayloadMalformed(t *testing.T) {
	if _, err := ParseInitPayload("<map", 800, 600); err == nil {
		t.Fatal("ParseInitPayload() accepted malformed XML")
	}
}
