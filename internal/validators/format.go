package validators

import "regexp"

var (
	phoneRe = regexp.MustCompile(`^[0-9]{10,11}$`)
	cnpjRe  = regexp.MustCompile(`^[0-9]{14}$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// IsPhoneValid exige só dígitos: DDD + 8 ou 9 dígitos.
func IsPhoneValid(phone string) bool {
	return phoneRe.MatchString(phone)
}

func IsCNPJValid(cnpj string) bool {
	return cnpjRe.MatchString(cnpj)
}

func IsEmailFormatValid(email string) bool {
	return emailRe.MatchString(email)
}
