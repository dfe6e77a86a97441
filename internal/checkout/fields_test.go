package checkout

import "testing"

const testAddressMinLen = 15

func validFields() Fields {
	return Fields{
		Name:          "Ali Khan",
		Email:         "ali@example.com",
		Phone:         "0300 1234567",
		Address:       "House 12, Street 4, Gulberg III, Lahore",
		PaymentMethod: "cod",
	}
}

func TestValidateAcceptsWellFormedFields(t *testing.T) {
	t.Parallel()

	if err := validFields().Validate(testAddressMinLen); err != nil {
		t.Fatalf("unexpected field error: %v", err)
	}
}

func TestValidateName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value string
		ok    bool
	}{
		{"two letters too short", "Al", false},
		{"three letters", "Ali", true},
		{"letters and spaces", "Ali Khan", true},
		{"digits rejected", "Ali123", false},
		{"punctuation rejected", "Ali-Khan", false},
		{"fifty letters accepted", "Abcdefghij Abcdefghij Abcdefghij Abcdefghij Abcdef", true},
		{"fifty one rejected", "Abcdefghij Abcdefghij Abcdefghij Abcdefghij Abcdefg", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := validFields()
			fields.Name = tc.value
			err := fields.Validate(testAddressMinLen)
			if tc.ok && err != nil {
				t.Fatalf("expected %q to pass, got %v", tc.value, err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatalf("expected %q to fail", tc.value)
				}
				if err.Field != "name" {
					t.Fatalf("expected name failure, got field %q", err.Field)
				}
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value string
		ok    bool
	}{
		{"ali@example.com", true},
		{"a.b+c@mail.example.pk", true},
		{"foo@bar", false},
		{"foo bar@baz.com", false},
		{"@example.com", false},
		{"ali@", false},
	}

	for _, tc := range cases {
		fields := validFields()
		fields.Email = tc.value
		err := fields.Validate(testAddressMinLen)
		if tc.ok && err != nil {
			t.Fatalf("expected %q to pass, got %v", tc.value, err)
		}
		if !tc.ok && (err == nil || err.Field != "email") {
			t.Fatalf("expected email failure for %q, got %v", tc.value, err)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value string
		ok    bool
	}{
		{"0300 1234567", true},
		{"+92-300-1234567", true},
		{"(042) 3581234", true},
		{"12345678", false},
		{"0300123456789012", false},
		{"phone number", false},
	}

	for _, tc := range cases {
		fields := validFields()
		fields.Phone = tc.value
		err := fields.Validate(testAddressMinLen)
		if tc.ok && err != nil {
			t.Fatalf("expected %q to pass, got %v", tc.value, err)
		}
		if !tc.ok && (err == nil || err.Field != "phone") {
			t.Fatalf("expected phone failure for %q, got %v", tc.value, err)
		}
	}
}

func TestValidateAddressLength(t *testing.T) {
	t.Parallel()

	fields := validFields()
	fields.Address = "Short street 1"
	if err := fields.Validate(testAddressMinLen); err == nil || err.Field != "address" {
		t.Fatalf("expected address failure, got %v", err)
	}

	fields.Address = "Short street 12"
	if err := fields.Validate(testAddressMinLen); err != nil {
		t.Fatalf("expected 15-char address to pass, got %v", err)
	}

	// Surrounding whitespace must not count toward the minimum.
	fields.Address = "   Short st 1     "
	if err := fields.Validate(testAddressMinLen); err == nil || err.Field != "address" {
		t.Fatalf("expected padded short address to fail, got %v", err)
	}
}

func TestValidatePaymentMethod(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"jazzcash", "easypaisa", "card", "cod"} {
		fields := validFields()
		fields.PaymentMethod = value
		if err := fields.Validate(testAddressMinLen); err != nil {
			t.Fatalf("expected %q to pass, got %v", value, err)
		}
	}

	fields := validFields()
	fields.PaymentMethod = "bitcoin"
	if err := fields.Validate(testAddressMinLen); err == nil || err.Field != "payment_method" {
		t.Fatalf("expected payment method failure, got %v", err)
	}
}

func TestValidateStopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	fields := Fields{Name: "X", Email: "bad", Phone: "bad", Address: "short", PaymentMethod: "bad"}
	err := fields.Validate(testAddressMinLen)
	if err == nil || err.Field != "name" {
		t.Fatalf("expected the name failure to surface first, got %v", err)
	}
}
