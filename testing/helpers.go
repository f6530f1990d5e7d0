// Package testing provides test utilities for csvline.
package testing

import (
	gotesting "testing"

	"github.com/zoobzio/csvline"
)

// TestKey returns a valid 32-byte key for AES-256 and XChaCha20 testing.
func TestKey(tb gotesting.TB) []byte {
	tb.Helper()
	return []byte("32-byte-key-for-aes-256-encrypt!")
}

// TestEncryptor returns an AES encryptor configured for testing.
func TestEncryptor(tb gotesting.TB) csvline.Encryptor {
	tb.Helper()
	enc, err := csvline.AES(TestKey(tb))
	if err != nil {
		tb.Fatalf("AES() error: %v", err)
	}
	return enc
}

// PeopleCSV is the byte-exact file content of PeopleRows.
const PeopleCSV = `id,first_name,last_name,email,gender,ip_address
1,Annabell,Bentinck,abentinck0@mapy.cz,Female,58.61.141.234
2,Cilka,Merrill,cmerrill1@illinois.edu,Female,55.244.164.10
3,Calla,Stollwerck,cstollwerck2@cocolog-nifty.com,Female,34.144.153.189
4,Pauly,Pickthorne,ppickthorne3@macromedia.com,Male,59.180.3.122
5,Matthias,Halton,mhalton4@businesswire.com,Male,102.82.162.189
6,Lyn,Halston,lhalston5@bing.com,Female,209.190.61.163
7,Gawain,Houlston,ghoulston6@harvard.edu,Male,227.100.124.221
8,Kariotta,Stotherfield,kstotherfield7@tripod.com,Female,130.87.80.85
9,Benny,Panniers,bpanniers8@moonfruit.com,Female,99.243.74.208
10,Allister,Bernardi,abernardi9@instagram.com,Male,45.210.112.131
`

// PeopleRows returns a fresh copy of the header and ten records behind
// PeopleCSV.
func PeopleRows() [][]string {
	return [][]string{
		{"id", "first_name", "last_name", "email", "gender", "ip_address"},
		{"1", "Annabell", "Bentinck", "abentinck0@mapy.cz", "Female", "58.61.141.234"},
		{"2", "Cilka", "Merrill", "cmerrill1@illinois.edu", "Female", "55.244.164.10"},
		{"3", "Calla", "Stollwerck", "cstollwerck2@cocolog-nifty.com", "Female", "34.144.153.189"},
		{"4", "Pauly", "Pickthorne", "ppickthorne3@macromedia.com", "Male", "59.180.3.122"},
		{"5", "Matthias", "Halton", "mhalton4@businesswire.com", "Male", "102.82.162.189"},
		{"6", "Lyn", "Halston", "lhalston5@bing.com", "Female", "209.190.61.163"},
		{"7", "Gawain", "Houlston", "ghoulston6@harvard.edu", "Male", "227.100.124.221"},
		{"8", "Kariotta", "Stotherfield", "kstotherfield7@tripod.com", "Female", "130.87.80.85"},
		{"9", "Benny", "Panniers", "bpanniers8@moonfruit.com", "Female", "99.243.74.208"},
		{"10", "Allister", "Bernardi", "abernardi9@instagram.com", "Male", "45.210.112.131"},
	}
}

// Person binds one PeopleRows record. Email is encrypted at rest and masked
// on send; the IP address is masked on send.
type Person struct {
	ID        int    `csv:"id"`
	FirstName string `csv:"first_name" send.mask:"name"`
	LastName  string `csv:"last_name" send.mask:"name"`
	Email     string `csv:"email" store.encrypt:"aes" load.decrypt:"aes" send.mask:"email"`
	Gender    string `csv:"gender"`
	IPAddress string `csv:"ip_address" send.mask:"ip"`
}
