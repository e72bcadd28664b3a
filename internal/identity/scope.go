package identity

import "gorm.io/gorm"

// CanView reports whether ident may read a record owned by ownerID.
func CanView(ident Identity, ownerID uint) bool {
	return ident.IsAdmin() || Owns(ident, ownerID)
}

// Owns reports whether ident is the owner. Mutations use this even for admins.
func Owns(ident Identity, ownerID uint) bool {
	return ident.ID != 0 && ident.ID == ownerID
}

// VisibleTo is the query form of CanView: admins see every row, everyone
// else only rows whose ownerCol matches their id.
func VisibleTo(ident Identity, ownerCol string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if ident.IsAdmin() {
			return db
		}
		return db.Where(ownerCol+" = ?", ident.ID)
	}
}

// OwnedBy is the query form of Owns.
func OwnedBy(ident Identity, ownerCol string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(ownerCol+" = ?", ident.ID)
	}
}
