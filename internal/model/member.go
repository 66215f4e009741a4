package model

import "time"

// Member is the profile record of a registered seller.  It maps one to one
// onto the `members` table.  The username ties the profile to its login
// account in `users`; it is assigned at registration and never updated.
//
// Fields:
//  ID                – primary key identifier of the member.
//  FirstName         – given name.
//  LastName          – family name.
//  Phone             – contact phone number.
//  Username          – login name, unique, immutable after creation.
//  Email             – contact email address.
//  BankAccountNumber – payout account number.
//  BankRoutingNumber – payout routing number.
//  BankName          – name of the payout bank.
//  BankCountry       – country of the payout bank.
//  CreatedAt         – date the profile was created.
type Member struct {
	ID                int       // members.member_id
	FirstName         string    // members.first_name
	LastName          string    // members.last_name
	Phone             string    // members.phone
	Username          string    // members.username
	Email             string    // members.email
	BankAccountNumber string    // members.bank_account_number
	BankRoutingNumber string    // members.bank_routing_number
	BankName          string    // members.bank_name
	BankCountry       string    // members.bank_country
	CreatedAt         time.Time // members.created_at (DATE)
}
