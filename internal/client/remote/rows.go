package remote

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/nattavat/prdir/internal/client/models"
)

// The sheet identifies contact fields by fixed human-readable Thai column
// labels, not programmatic names. The same labels are reused as CSV export
// headers, in this order.
const (
	LabelName         = "ชื่อ-นามสกุล"
	LabelType         = "ประเภทของข้อมูล"
	LabelPosition     = "ตำแหน่ง"
	LabelOrganization = "หน่วยงาน"
	LabelPhone        = "เบอร์โทรศัพท์"
	LabelEmail        = "e-mail"
	LabelAddressNo    = "เลขที่"
	LabelSoi          = "ซอย"
	LabelMoo          = "หมู่ที่"
	LabelRoad         = "ถนน"
	LabelSubdistrict  = "ตำบล/แขวง"
	LabelDistrict     = "อำเภอ/เขต"
	LabelProvince     = "จังหวัด"
	LabelZipcode      = "รหัสไปรษณีย์"
	LabelLink         = "LINK"
)

// FieldLabels returns the fixed column order shared by the write protocol
// and the CSV export.
func FieldLabels() []string {
	return []string{
		LabelName, LabelType, LabelPosition, LabelOrganization, LabelPhone,
		LabelEmail, LabelAddressNo, LabelSoi, LabelMoo, LabelRoad,
		LabelSubdistrict, LabelDistrict, LabelProvince, LabelZipcode, LabelLink,
	}
}

// contactRow mirrors one sheet row. RowID arrives as a JSON number or a
// string depending on the script version, so it is decoded loosely.
type contactRow struct {
	RowID        any    `json:"rowId"`
	Name         string `json:"ชื่อ-นามสกุล"`
	Type         string `json:"ประเภทของข้อมูล"`
	Position     string `json:"ตำแหน่ง"`
	Organization string `json:"หน่วยงาน"`
	Phone        string `json:"เบอร์โทรศัพท์"`
	Email        string `json:"e-mail"`
	AddressNo    string `json:"เลขที่"`
	Soi          string `json:"ซอย"`
	Moo          string `json:"หมู่ที่"`
	Road         string `json:"ถนน"`
	Subdistrict  string `json:"ตำบล/แขวง"`
	District     string `json:"อำเภอ/เขต"`
	Province     string `json:"จังหวัด"`
	Zipcode      string `json:"รหัสไปรษณีย์"`
	Link         string `json:"LINK"`
}

// userRow mirrors one account row.
type userRow struct {
	ID       any    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// looseIDString renders a loosely typed identifier the way the sheet script
// prints it: numbers without a fractional part, everything else verbatim.
func looseIDString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case json.Number:
		return id.String()
	case nil:
		return ""
	default:
		return ""
	}
}

func (r contactRow) toContact() models.Contact {
	t := r.Type
	if t == "" {
		t = "Uncategorized"
	}
	return models.Contact{
		ID:           looseIDString(r.RowID),
		Name:         r.Name,
		Type:         t,
		Position:     r.Position,
		Organization: r.Organization,
		Phone:        r.Phone,
		Email:        r.Email,
		Address: models.Address{
			No:          r.AddressNo,
			Soi:         r.Soi,
			Moo:         r.Moo,
			Road:        r.Road,
			Subdistrict: r.Subdistrict,
			District:    r.District,
			Province:    r.Province,
			Zipcode:     r.Zipcode,
		},
		Link:      r.Link,
		CreatedAt: time.Now().UnixMilli(),
	}
}

func (r userRow) toUser() models.User {
	return models.User{
		ID:       looseIDString(r.ID),
		Username: r.Username,
		Password: r.Password,
		Name:     r.Name,
		Role:     models.Role(r.Role),
	}
}

// contactFields flattens a contact into the labelled field set the write
// protocol expects.
func contactFields(c models.Contact) map[string]string {
	return map[string]string{
		LabelName:         c.Name,
		LabelType:         c.Type,
		LabelPosition:     c.Position,
		LabelOrganization: c.Organization,
		LabelPhone:        c.Phone,
		LabelEmail:        c.Email,
		LabelAddressNo:    c.Address.No,
		LabelSoi:          c.Address.Soi,
		LabelMoo:          c.Address.Moo,
		LabelRoad:         c.Address.Road,
		LabelSubdistrict:  c.Address.Subdistrict,
		LabelDistrict:     c.Address.District,
		LabelProvince:     c.Address.Province,
		LabelZipcode:      c.Address.Zipcode,
		LabelLink:         c.Link,
	}
}

// decodeRows accepts both response shapes: a bare array, or an object with
// the array under "data".
func decodeRows(body []byte) ([]json.RawMessage, error) {
	var envelope struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
