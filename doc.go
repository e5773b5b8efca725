// Package otherdata implements the escaped delimited-text codec used to pack
// auxiliary "other data" payloads into a single text blob of a data record.
//
// # Wire Format
//
// A payload is a list of fields joined by ','. A backslash escapes exactly
// the next character and suppresses its role as a delimiter:
//
//	72.5,sensor\,left,unit=kg,note\=x=1
//
// Each field classifies into one of three items:
//   - StringValue: plain text
//   - NamedValue: a field containing an unescaped '=' (name=value)
//   - NumericValue: a StringValue promoted by PromoteNumeric
//
// # Usage
//
//	env := otherdata.Encode(otherdata.Items{
//	    otherdata.NumericValue{Value: 72.5},
//	    otherdata.NamedValue{Name: "unit", Value: "kg"},
//	})
//
//	items, err := otherdata.Decode(env)
//	if err != nil {
//	    return err
//	}
//
// # Compatibility
//
// Encoding escapes only the delimiter split on at each level. Plain strings
// get ',' escaped but never '=', so a StringValue holding '=' decodes back
// as a NamedValue. Stored payloads depend on this and it is kept as is.
//
// All functions are pure and safe for concurrent use.
package otherdata
