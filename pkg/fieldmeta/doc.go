// Package fieldmeta loads field metadata catalogs for output fields. Catalogs
// come from JSON/YAML documents shaped as
//
//	objects:
//	  Opportunity:
//	    fields:
//	      AccountId:
//	        displayType: reference
//	        relationshipName: Account
//	        relationshipNameField: Name
//
// or from the object schemas of an OpenAPI document (FromOpenAPI). Display
// types are normalised to lower case and default to "string".
package fieldmeta
