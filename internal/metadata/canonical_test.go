package metadata_test

import (
	"errors"
	"math"
	"testing"

	"github.com/temirov/chaotic-gateway/internal/apperrors"
	"github.com/temirov/chaotic-gateway/internal/metadata"
)

const (
	// transferDocument matches JSON.stringify output for the same object literal.
	transferDocument = `{"from":"0xabc","to":"0xdef","amount":12.5,"ts":1700000000000,"txID":"tx-42","memo":"rent <june> & \"utilities\"","tags":["a",true,null,{"n":-0.001}]}`
	// numbersDocument matches JSON.stringify([1e21,1e-7,123456789012345680000,0.1,-0,5e-324,"é \u0001"]).
	numbersDocument = `[1e+21,1e-7,123456789012345680000,0.1,0,5e-324,"é \u0001"]`
)

type canonicalTestDefinition struct {
	testName      string
	inputValue    metadata.Value
	expectedValue string
}

// TestCanonical_MatchesECMAScriptStringify verifies byte-exact output for representative values.
func TestCanonical_MatchesECMAScriptStringify(testingInstance *testing.T) {
	testCases := []canonicalTestDefinition{
		{
			testName:      "insertion order is preserved",
			inputValue:    metadata.ObjectValue(metadata.NewObject().Set("txID", metadata.String("tx1")).Set("amount", metadata.Number(5))),
			expectedValue: `{"txID":"tx1","amount":5}`,
		},
		{
			testName:      "reset keeps first position",
			inputValue:    metadata.ObjectValue(metadata.NewObject().Set("b", metadata.Number(1)).Set("a", metadata.Number(2)).Set("b", metadata.Number(3))),
			expectedValue: `{"b":3,"a":2}`,
		},
		{
			testName: "numbers use ES formatting",
			inputValue: metadata.Array(
				metadata.Number(1e21),
				metadata.Number(1e-7),
				metadata.Number(123456789012345680000),
				metadata.Number(0.1),
				metadata.Number(math.Copysign(0, -1)),
				metadata.Number(5e-324),
				metadata.String("é \u0001"),
			),
			expectedValue: numbersDocument,
		},
		{
			testName:      "fixed notation boundaries",
			inputValue:    metadata.Array(metadata.Number(1e-6), metadata.Number(999999999999999900000), metadata.Number(-2.5e-8)),
			expectedValue: `[0.000001,999999999999999900000,-2.5e-8]`,
		},
		{
			testName:      "minimal string escaping",
			inputValue:    metadata.String("quote\" slash\\ tab\t nl\n cr\r bs\b ff\f unit\u001f html<>& sep\u2028"),
			expectedValue: "\"quote\\\" slash\\\\ tab\\t nl\\n cr\\r bs\\b ff\\f unit\\u001f html<>& sep\u2028\"",
		},
		{
			testName:      "scalars",
			inputValue:    metadata.Array(metadata.Null(), metadata.Bool(true), metadata.Bool(false), metadata.Array(), metadata.ObjectValue(metadata.NewObject())),
			expectedValue: `[null,true,false,[],{}]`,
		},
		{
			testName:      "nil object is null",
			inputValue:    metadata.ObjectValue(nil),
			expectedValue: `null`,
		},
	}
	for _, currentTestCase := range testCases {
		testingInstance.Run(currentTestCase.testName, func(nestedTestingInstance *testing.T) {
			canonicalBytes, canonicalError := metadata.Canonical(currentTestCase.inputValue)
			if canonicalError != nil {
				nestedTestingInstance.Fatalf("unexpected error: %v", canonicalError)
			}
			if string(canonicalBytes) != currentTestCase.expectedValue {
				nestedTestingInstance.Fatalf("canonical=%s expected=%s", canonicalBytes, currentTestCase.expectedValue)
			}
		})
	}
}

type canonicalFailureTestDefinition struct {
	testName   string
	inputValue func() metadata.Value
}

// TestCanonical_RejectsUnserializableValues verifies that values without a canonical form fail with ErrSerialization.
func TestCanonical_RejectsUnserializableValues(testingInstance *testing.T) {
	testCases := []canonicalFailureTestDefinition{
		{testName: "NaN", inputValue: func() metadata.Value { return metadata.Number(math.NaN()) }},
		{testName: "positive infinity", inputValue: func() metadata.Value { return metadata.Number(math.Inf(1)) }},
		{
			testName: "nested negative infinity",
			inputValue: func() metadata.Value {
				return metadata.ObjectValue(metadata.NewObject().Set("amount", metadata.Number(math.Inf(-1))))
			},
		},
		{testName: "invalid UTF-8", inputValue: func() metadata.Value { return metadata.String("bad\xffbyte") }},
		{
			testName: "invalid UTF-8 key",
			inputValue: func() metadata.Value {
				return metadata.ObjectValue(metadata.NewObject().Set("\xfe", metadata.Null()))
			},
		},
		{
			testName: "cyclic reference",
			inputValue: func() metadata.Value {
				object := metadata.NewObject()
				object.Set("self", metadata.ObjectValue(object))
				return metadata.ObjectValue(object)
			},
		},
	}
	for _, currentTestCase := range testCases {
		testingInstance.Run(currentTestCase.testName, func(nestedTestingInstance *testing.T) {
			_, canonicalError := metadata.Canonical(currentTestCase.inputValue())
			if !errors.Is(canonicalError, apperrors.ErrSerialization) {
				nestedTestingInstance.Fatalf("error=%v expected ErrSerialization", canonicalError)
			}
			if !errors.Is(canonicalError, apperrors.ErrInvalidInput) {
				nestedTestingInstance.Fatalf("error=%v expected ErrInvalidInput", canonicalError)
			}
		})
	}
}

// TestCanonical_SharedObjectIsNotCyclic verifies that the same object may appear twice without being a cycle.
func TestCanonical_SharedObjectIsNotCyclic(testingInstance *testing.T) {
	shared := metadata.NewObject().Set("k", metadata.Number(1))
	value := metadata.Array(metadata.ObjectValue(shared), metadata.ObjectValue(shared))
	canonicalBytes, canonicalError := metadata.Canonical(value)
	if canonicalError != nil {
		testingInstance.Fatalf("unexpected error: %v", canonicalError)
	}
	if string(canonicalBytes) != `[{"k":1},{"k":1}]` {
		testingInstance.Fatalf("canonical=%s", canonicalBytes)
	}
}
