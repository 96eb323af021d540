package storage

import "github.com/Brandon-Mardis/Equip/internal/models"

// Demo catalog every fresh session starts from. Kept in insertion order so
// the first session in a fresh database sees ids 1..12 and 1..5.

func strp(s string) *string { return &s }

func seedAssets() []models.Asset {
	return []models.Asset{
		{Tag: "EQ-LAP-001", Name: "Dell XPS 15", Category: "Laptop", Status: models.AssetAssigned, Site: "HQ", AssignedTo: strp("Sam Rivera"), PurchaseDate: models.MustDate("2024-03-15")},
		{Tag: "EQ-LAP-002", Name: `MacBook Pro 16"`, Category: "Laptop", Status: models.AssetAvailable, Site: "HQ", PurchaseDate: models.MustDate("2024-01-20")},
		{Tag: "EQ-MON-042", Name: `Dell UltraSharp 27"`, Category: "Monitor", Status: models.AssetAssigned, Site: "HQ", AssignedTo: strp("Sam Rivera"), PurchaseDate: models.MustDate("2024-02-10")},
		{Tag: "EQ-MON-043", Name: "LG 4K Monitor", Category: "Monitor", Status: models.AssetMaintenance, Site: "New York", PurchaseDate: models.MustDate("2023-11-05")},
		{Tag: "EQ-DOC-018", Name: "Dell WD19 Dock", Category: "Docking Station", Status: models.AssetAssigned, Site: "HQ", AssignedTo: strp("Sam Rivera"), PurchaseDate: models.MustDate("2024-03-15")},
		{Tag: "EQ-LAP-003", Name: "ThinkPad X1 Carbon", Category: "Laptop", Status: models.AssetBroken, Site: "Remote", AssignedTo: strp("Jordan Lee"), PurchaseDate: models.MustDate("2023-08-22")},
		{Tag: "EQ-PER-089", Name: "Logitech MX Master 3", Category: "Peripheral", Status: models.AssetAssigned, Site: "HQ", AssignedTo: strp("Sam Rivera"), PurchaseDate: models.MustDate("2024-03-15")},
		{Tag: "EQ-MON-044", Name: `Samsung 32" Curved`, Category: "Monitor", Status: models.AssetAvailable, Site: "New York", PurchaseDate: models.MustDate("2024-04-01")},
		{Tag: "EQ-LAP-004", Name: "HP EliteBook 840", Category: "Laptop", Status: models.AssetAssigned, Site: "New York", AssignedTo: strp("Alex Chen"), PurchaseDate: models.MustDate("2024-02-28")},
		{Tag: "EQ-LAP-005", Name: "Dell Latitude 5520", Category: "Laptop", Status: models.AssetAvailable, Site: "HQ", PurchaseDate: models.MustDate("2024-05-10")},
		{Tag: "EQ-DOC-019", Name: "Lenovo USB-C Dock", Category: "Docking Station", Status: models.AssetAvailable, Site: "HQ", PurchaseDate: models.MustDate("2024-06-01")},
		{Tag: "EQ-PER-090", Name: "Logitech MX Keys", Category: "Peripheral", Status: models.AssetAssigned, Site: "HQ", AssignedTo: strp("Alex Chen"), PurchaseDate: models.MustDate("2024-02-28")},
	}
}

func seedRequests() []models.Request {
	return []models.Request{
		{Type: "New Equipment", Description: "Need a second monitor for productivity", Priority: "Normal", Status: models.RequestPending, User: "Sam Rivera", CreatedAt: models.MustDate("2025-01-08")},
		{Type: "Repair", Asset: strp("ThinkPad X1 Carbon"), Description: "Screen flickering issue", Priority: "High", Status: models.RequestApproved, User: "Jordan Lee", CreatedAt: models.MustDate("2025-01-07")},
		{Type: "Replace", Asset: strp("Logitech Keyboard"), Description: "Keys are worn out and sticky", Priority: "Low", Status: models.RequestCompleted, User: "Alex Chen", CreatedAt: models.MustDate("2025-01-05")},
		{Type: "New Equipment", Description: "Requesting docking station for home office", Priority: "Normal", Status: models.RequestDenied, User: "Taylor Kim", CreatedAt: models.MustDate("2025-01-04")},
		{Type: "Repair", Asset: strp("Dell Monitor"), Description: "Dead pixels appearing", Priority: "Normal", Status: models.RequestPending, User: "Sam Rivera", CreatedAt: models.MustDate("2025-01-02")},
	}
}
