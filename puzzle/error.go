// tilesolver - an A*-based sliding-tile puzzle solver.
// Copyright (C) 2020 Michael Galliers.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.

package puzzle

import (
	"fmt"
)

/*

Errors: used to report problems parsing and constructing boards.
The search itself has no failure modes on solvable input, so every
error surface sits at the boundary, before a solve begins.

*/

// An Error describes a problem with a board or a requested
// operation.  It can produce an error message in English, but its
// structured fields let clients recognize conditions without parsing
// text: "this thing failed to meet this condition", with
// supplemental details about the thing and the condition.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Structure ErrorStructure `json:"structure,omitempty"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error refers to: a
// caller-supplied argument, the board built from one, or a failure
// inside the implementation.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	RequestScope
	ArgumentScope
	BoardScope
	InternalScope
	MaxScope
)

// The ErrorStructure denotes whether the problem is in the overall
// Scope, an Attribute of the Scope, or the value of an Attribute of
// the Scope.
type ErrorStructure int

// Constants for the various structure codes.
const (
	UnknownStructure ErrorStructure = iota
	ScopeStructure
	AttributeStructure
	AttributeValueStructure
	MaxStructure
)

// The ErrorCondition is the predicate that the scope/attribute/value
// failed to satisfy.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	TooSmallCondition
	NonIntegerCondition
	WrongFieldCountCondition
	WrongBoardSizeCondition
	BadTileSetCondition
	UnknownDirectionCondition
	EmptyArgumentCondition
	MaxCondition
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	DecodeAttribute
	EncodeAttribute
	URLAttribute
	LocationAttribute
	SizeAttribute
	FieldAttribute
	TilesAttribute
	DirectionAttribute
	MaxAttribute
)

// The ErrorData provides details about the thing that failed to meet
// the predicate (such as the offending field) as well as the
// predicate itself (such as the minimum required value).
//
// Every item in the slice is required to be JSON-serializable, so it
// can be returned to web clients.  There is no good way to express
// that requirement to the compiler, so implementors have to keep it
// by hand.
type ErrorData []interface{}

// rangeError returns an Error that describes an under-minimum value.
func rangeError(attr ErrorAttribute, val, min int) Error {
	return Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: attr,
		Condition: TooSmallCondition,
		Values:    ErrorData{val, min},
	}
}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will produce an
// appropriate (English, non-localized) message.
func (e Error) Error() string {
	es := e.Message
	if len(es) > 0 {
		return es
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	switch e.Scope {
	case RequestScope:
		es = "Invalid request: "
	case ArgumentScope:
		es = "Invalid argument: "
	case BoardScope:
		es = "Invalid board: "
	case InternalScope:
		es = "Internal logic error: "
	default:
		es = "Unknown error: "
	}
	if e.Structure == AttributeStructure || e.Structure == AttributeValueStructure {
		switch e.Attribute {
		case DecodeAttribute:
			es += "JSON Decode error"
		case EncodeAttribute:
			es += "JSON Encode error"
		case URLAttribute:
			es += "Resource path"
		case LocationAttribute:
			es += fmt.Sprintf("In puzzle.%v", nextVal())
		case SizeAttribute:
			es += "Board size"
		case FieldAttribute:
			es += "Field"
		case TilesAttribute:
			es += "Tiles"
		case DirectionAttribute:
			es += "Direction"
		default:
			es += "<Unknown attribute>"
		}
		if e.Structure == AttributeValueStructure {
			es += " (" + fmt.Sprint(nextVal()) + ")"
		}
		es += ": "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case TooSmallCondition:
		es += fmt.Sprintf("Must be at least %v", nextVal())
	case NonIntegerCondition:
		es += fmt.Sprintf("Not a decimal integer")
	case WrongFieldCountCondition:
		es += fmt.Sprintf("Got %v fields, need %v", nextVal(), nextVal())
	case WrongBoardSizeCondition:
		es += fmt.Sprintf("Doesn't match the declared side length (need %v tiles)", nextVal())
	case BadTileSetCondition:
		es += fmt.Sprintf("Symbol %v is missing, repeated, or out of range", nextVal())
	case UnknownDirectionCondition:
		es += fmt.Sprintf("Not one of U, D, L, R")
	case EmptyArgumentCondition:
		es += fmt.Sprintf("Required value was missing")
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}
