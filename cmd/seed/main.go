package main

import (
	"fmt"

	"github.com/bookstore-next/internal/config"
	"github.com/bookstore-next/internal/logger"
	"github.com/bookstore-next/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{
			Name:        "Fiction",
			Description: "Novels, short stories and literary fiction",
			SortOrder:   300,
		},
		{
			Name:        "Science",
			Description: "Popular science and academic titles",
			SortOrder:   200,
		},
		{
			Name:        "Technology",
			Description: "Programming, engineering and computing",
			SortOrder:   100,
		},
	}

	categoryIDs := map[string]uint{}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("name = ?", cat.Name).First(&existing).Error; err != nil {
			// 不存在则创建
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Name, err)
				continue
			}
			stdLog.Printf("Created category: %s", cat.Name)
			categoryIDs[cat.Name] = cat.ID
		} else {
			stdLog.Printf("Category already exists: %s", cat.Name)
			categoryIDs[existing.Name] = existing.ID
		}
	}

	// 添加图书
	books := []struct {
		Book       models.Book
		Categories []string
	}{
		{
			Book: models.Book{
				Title:       "The Go Programming Language",
				Author:      "Alan A. A. Donovan",
				ISBN:        "9780134190440",
				Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(39.99)),
				Description: "The authoritative resource for writing clear and idiomatic Go.",
				CoverImage:  "https://images.example.com/covers/gopl.jpg",
			},
			Categories: []string{"Technology"},
		},
		{
			Book: models.Book{
				Title:       "Designing Data-Intensive Applications",
				Author:      "Martin Kleppmann",
				ISBN:        "9781449373320",
				Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(44.50)),
				Description: "The big ideas behind reliable, scalable and maintainable systems.",
				CoverImage:  "https://images.example.com/covers/ddia.jpg",
			},
			Categories: []string{"Technology", "Science"},
		},
		{
			Book: models.Book{
				Title:       "A Brief History of Time",
				Author:      "Stephen Hawking",
				ISBN:        "9780553380163",
				Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(18.00)),
				Description: "From the Big Bang to black holes.",
				CoverImage:  "https://images.example.com/covers/brief-history.jpg",
			},
			Categories: []string{"Science"},
		},
		{
			Book: models.Book{
				Title:       "The Remains of the Day",
				Author:      "Kazuo Ishiguro",
				ISBN:        "9780679731726",
				Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(15.95)),
				Description: "A Booker Prize winning novel of duty and regret.",
				CoverImage:  "https://images.example.com/covers/remains.jpg",
			},
			Categories: []string{"Fiction"},
		},
		{
			Book: models.Book{
				Title:       "Kafka on the Shore",
				Author:      "Haruki Murakami",
				ISBN:        "9781400079278",
				Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(16.99)),
				Description: "A metaphysical journey between two intertwined odysseys.",
				CoverImage:  "https://images.example.com/covers/kafka-shore.jpg",
			},
			Categories: []string{"Fiction"},
		},
	}

	for _, item := range books {
		linked := make([]models.Category, 0, len(item.Categories))
		for _, name := range item.Categories {
			if id, ok := categoryIDs[name]; ok {
				linked = append(linked, models.Category{ID: id})
			}
		}
		item.Book.Categories = linked

		var existing models.Book
		if err := models.DB.Where("isbn = ?", item.Book.ISBN).First(&existing).Error; err != nil {
			if err := models.DB.Create(&item.Book).Error; err != nil {
				stdLog.Printf("Failed to create book %s: %v", item.Book.ISBN, err)
			} else {
				stdLog.Printf("Created book: %s", item.Book.Title)
			}
		} else {
			existing.Title = item.Book.Title
			existing.Author = item.Book.Author
			existing.Price = item.Book.Price
			existing.Description = item.Book.Description
			existing.CoverImage = item.Book.CoverImage
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update book %s: %v", item.Book.ISBN, err)
				continue
			}
			if err := models.DB.Model(&existing).Association("Categories").Replace(linked); err != nil {
				stdLog.Printf("Failed to update book categories %s: %v", item.Book.ISBN, err)
			} else {
				stdLog.Printf("Updated book: %s", item.Book.Title)
			}
		}
	}

	fmt.Println("\n✅ Test data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 3 Categories")
	fmt.Println("- 5 Books")
}
