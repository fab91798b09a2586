package models

import "testing"

func TestParseGender(t *testing.T) {
	for _, valid := range []string{"male", "female"} {
		if _, ok := ParseGender(valid); !ok {
			t.Errorf("expected %q to parse", valid)
		}
	}
	for _, invalid := range []string{"", "MALE", "other", "m"} {
		if _, ok := ParseGender(invalid); ok {
			t.Errorf("expected %q to be rejected", invalid)
		}
	}
}

func TestProfileTypeCodes(t *testing.T) {
	want := map[ProfileType]int16{
		ProfileTypeDriver:    0,
		ProfileTypeCompanion: 1,
		ProfileTypeTogether:  2,
		ProfileTypeAny:       3,
	}
	for profileType, code := range want {
		parsed, ok := ParseProfileType(string(profileType))
		if !ok {
			t.Fatalf("expected %q to parse", profileType)
		}
		if parsed.Code() != code {
			t.Errorf("%s: want code %d, got %d", profileType, code, parsed.Code())
		}
	}
	if _, ok := ParseProfileType("passenger"); ok {
		t.Error("expected unknown profile type to be rejected")
	}
}

func TestParsePhotoClass(t *testing.T) {
	for _, valid := range []string{"user", "profile"} {
		if _, ok := ParsePhotoClass(valid); !ok {
			t.Errorf("expected %q to parse", valid)
		}
	}
	if _, ok := ParsePhotoClass("users"); ok {
		t.Error("expected unknown photo class to be rejected")
	}
}

func TestParseVehicleType(t *testing.T) {
	for _, valid := range []string{"sedan", "suv", "van", "coupe", "moto", "other"} {
		parsed, ok := ParseVehicleType(valid)
		if !ok {
			t.Errorf("expected %q to parse", valid)
		}
		if len(string(parsed)) > 8 {
			t.Errorf("%q does not fit the VARCHAR(8) column", parsed)
		}
	}
	if _, ok := ParseVehicleType("tractor-trailer"); ok {
		t.Error("expected unknown vehicle type to be rejected")
	}
}
