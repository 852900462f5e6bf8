package encrypt

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("password1")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "password1" {
		t.Fatal("hash should not equal plaintext")
	}
	if !VerifyPassword(hash, "password1") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "password2") {
		t.Error("wrong password accepted")
	}
}
