package auth

// SignOutScope selects how wide a sign-out reaches: the current browser
// only, or every active session of the account.
type SignOutScope string

const (
	ScopeLocal  SignOutScope = "local"
	ScopeGlobal SignOutScope = "global"
)

// ParseSignOutScope defaults to local; narrowing invalidation to the
// current browser is the deliberate default, not an accident.
func ParseSignOutScope(s string) (SignOutScope, bool) {
	switch s {
	case "", string(ScopeLocal):
		return ScopeLocal, true
	case string(ScopeGlobal):
		return ScopeGlobal, true
	}
	return ScopeLocal, false
}
