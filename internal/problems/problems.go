// Package problems provides hand-coded CNF encodings of two classic word
// problems, as external collaborators of the resolution kernel. Neither
// encoding is special to the kernel: each is just a slice of *logic.Clause
// built with logic.NewClause, logic.NewLiteral, logic.NewVariable, and
// logic.NewConstant.
package problems

import "github.com/resolvekanren/resolvekanren/internal/logic"

// HowlingHounds returns the six-clause encoding of the "every hound
// howls, but John is a light sleeper who has no howling animals, and
// yet has a hound" puzzle. The clause set asserts the negation of the
// intended conclusion ("John has a mouse"); deriving the empty clause
// refutes it, demonstrating the hound must in fact have howled and kept
// John awake.
func HowlingHounds() []*logic.Clause {
	x := logic.NewVariable("x")
	y := logic.NewVariable("y")
	john := logic.NewConstant("John")
	a := logic.NewConstant("a")

	return []*logic.Clause{
		// All hounds howl.
		logic.NewClause([]logic.Literal{
			logic.NewLiteral("Hound", true, x),
			logic.NewLiteral("Howl", false, x),
		}, logic.InputSource{}),
		// A light sleeper who has a howling animal does not exist.
		logic.NewClause([]logic.Literal{
			logic.NewLiteral("LightSleeper", true, x),
			logic.NewLiteral("Has", true, x, y),
			logic.NewLiteral("Howl", true, y),
		}, logic.InputSource{}),
		// John is a light sleeper.
		logic.NewClause([]logic.Literal{
			logic.NewLiteral("LightSleeper", false, john),
		}, logic.InputSource{}),
		// John has animal a.
		logic.NewClause([]logic.Literal{
			logic.NewLiteral("Has", false, john, a),
		}, logic.InputSource{}),
		// Animal a is a hound.
		logic.NewClause([]logic.Literal{
			logic.NewLiteral("Hound", false, a),
		}, logic.InputSource{}),
		// Negation of the conclusion: John has a mouse.
		logic.NewClause([]logic.Literal{
			logic.NewLiteral("HasMouse", false, john),
		}, logic.InputSource{}),
	}
}

// DrugDealer returns the ten-clause "some customs official is a drug
// dealer" encoding.
//
// One clause here is preserved exactly as the source material states it,
// mistranscription and all: ¬Entered(y) ∨ VIP(y) ∨ CustomsOfficial(x) ∨
// SearchedBy(x,y). Read as intended ("every customs official searches
// every entering non-VIP"), CustomsOfficial(x) should be negated; written
// this way it instead asserts that some x is always a customs official,
// which is a different and strictly weaker premise. The kernel consumes
// clauses opaquely and this package does not correct it.
func DrugDealer() []*logic.Clause {
	x := logic.NewVariable("x")
	y := logic.NewVariable("y")
	dealer := logic.NewConstant("d")
	official := logic.NewConstant("o")

	return []*logic.Clause{
		// A customs official searches every entering non-VIP.
		logic.NewClause([]logic.Literal{
			logic.NewLiteral("CustomsOfficial", true, x),
			logic.NewLiteral("Entered", true, y),
			logic.NewLiteral("VIP", false, y),
			logic.NewLiteral("SearchedBy", false, x, y),
		}, logic.InputSource{}),
		// Dealer d is a drug dealer.
		logic.NewClause([]logic.Literal{
			logic.NewLiteral("DrugDealer", false, dealer),
		}, logic.InputSource{}),
		// Dealer d entered the country.
		logic.NewClause([]logic.Literal{
			logic.NewLiteral("Entered", false, dealer),
		}, logic.InputSource{}),
		// Dealer d is not a VIP.
		logic.NewClause([]logic.Literal{
			logic.NewLiteral("VIP", true, dealer),
		}, logic.InputSource{}),
		// No drug dealer is a VIP.
		logic.NewClause([]logic.Literal{
			logic.NewLiteral("DrugDealer", true, x),
			logic.NewLiteral("VIP", true, x),
		}, logic.InputSource{}),
		// Official o is a customs official.
		logic.NewClause([]logic.Literal{
			logic.NewLiteral("CustomsOfficial", false, official),
		}, logic.InputSource{}),
		// Official o is also a drug dealer.
		logic.NewClause([]logic.Literal{
			logic.NewLiteral("DrugDealer", false, official),
		}, logic.InputSource{}),
		// A drug dealer is searched only by another drug dealer.
		logic.NewClause([]logic.Literal{
			logic.NewLiteral("DrugDealer", true, y),
			logic.NewLiteral("SearchedBy", true, x, y),
			logic.NewLiteral("DrugDealer", false, x),
		}, logic.InputSource{}),
		// The mistranscribed clause; see the package doc comment above.
		logic.NewClause([]logic.Literal{
			logic.NewLiteral("Entered", true, y),
			logic.NewLiteral("VIP", false, y),
			logic.NewLiteral("CustomsOfficial", false, x),
			logic.NewLiteral("SearchedBy", false, x, y),
		}, logic.InputSource{}),
		// Negation of the conclusion: no customs official is a drug dealer.
		logic.NewClause([]logic.Literal{
			logic.NewLiteral("CustomsOfficial", true, x),
			logic.NewLiteral("DrugDealer", true, x),
		}, logic.InputSource{}),
	}
}

// ByName returns the named problem's clause set, standing in as the
// registry an external menu or CLI layer consults.
func ByName(name string) ([]*logic.Clause, bool) {
	switch name {
	case "howling-hounds":
		return HowlingHounds(), true
	case "drug-dealer":
		return DrugDealer(), true
	default:
		return nil, false
	}
}

// Names lists the registered problem identifiers, in a stable order.
func Names() []string {
	return []string{"howling-hounds", "drug-dealer"}
}
