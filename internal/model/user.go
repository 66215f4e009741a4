package model

// User is a login account as stored in the `users` table.  The username is
// the primary key and by convention matches the username of the member
// profile created in the same registration.  PasswordHash holds the bcrypt
// digest; the plain password never reaches the repository layer.  Enabled
// maps the CHAR(1) Y/N column; disabled accounts cannot log in.
type User struct {
	Username     string // users.username (primary key)
	PasswordHash string // users.password
	Enabled      bool   // users.enabled ('Y'/'N' in DB)
}

// Authority grants a role to a user.  The pair (Username, Authority) is
// unique; RoleMember is the only authority issued by this service.
type Authority struct {
	Username  string // authorities.username
	Authority string // authorities.authority, e.g. "ROLE_MEMBER"
}

// RoleMember is the default authority granted to every registered member.
const RoleMember = "ROLE_MEMBER"
