package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/service-directory/internal/config"
	"github.com/service-directory/internal/domain"
	"github.com/service-directory/internal/domain/repository"
	"github.com/service-directory/internal/pkg/logger"
	"github.com/service-directory/internal/repository/postgres"
)

// Hanoi city center, the origin of the generated service cloud.
const (
	originLat    = 21.0285
	originLng    = 105.8542
	spreadKm     = 10.0
	serviceCount = 200
	randomSeed   = 42
)

type wardSeed struct {
	name string
}

type districtSeed struct {
	name  string
	lat   float64
	lng   float64
	wards []wardSeed
}

var hanoiDistricts = []districtSeed{
	{
		name: "Ba Dinh", lat: 21.0352, lng: 105.8342,
		wards: []wardSeed{{"Phuc Xa"}, {"Truc Bach"}, {"Vinh Phuc"}, {"Cong Vi"}},
	},
	{
		name: "Hoan Kiem", lat: 21.0287, lng: 105.8524,
		wards: []wardSeed{{"Hang Bac"}, {"Hang Bo"}, {"Hang Trong"}, {"Trang Tien"}},
	},
	{
		name: "Dong Da", lat: 21.0180, lng: 105.8290,
		wards: []wardSeed{{"Cat Linh"}, {"Van Mieu"}, {"Kim Lien"}, {"Lang Ha"}},
	},
	{
		name: "Hai Ba Trung", lat: 21.0076, lng: 105.8560,
		wards: []wardSeed{{"Bach Khoa"}, {"Bach Dang"}, {"Thanh Nhan"}, {"Vinh Tuy"}},
	},
	{
		name: "Cau Giay", lat: 21.0328, lng: 105.7942,
		wards: []wardSeed{{"Dich Vong"}, {"Nghia Do"}, {"Quan Hoa"}, {"Yen Hoa"}},
	},
	{
		name: "Tay Ho", lat: 21.0700, lng: 105.8230,
		wards: []wardSeed{{"Quang An"}, {"Nhat Tan"}, {"Xuan La"}, {"Thuy Khue"}},
	},
}

type typeSeed struct {
	name        string
	description string
	icon        string
	prefixes    []string
}

var serviceTypes = []typeSeed{
	{"hospital", "Hospitals and clinics", "hospital", []string{"Benh Vien", "Phong Kham"}},
	{"pharmacy", "Pharmacies and drug stores", "pill", []string{"Nha Thuoc", "Pharmacy"}},
	{"restaurant", "Restaurants and eateries", "utensils", []string{"Nha Hang", "Quan An", "Bun Cha"}},
	{"cafe", "Coffee shops", "coffee", []string{"Ca Phe", "Cafe", "Tra Sua"}},
	{"school", "Schools and education centers", "school", []string{"Truong", "Trung Tam"}},
	{"bank", "Banks and ATMs", "bank", []string{"Ngan Hang", "ATM"}},
	{"supermarket", "Supermarkets and convenience stores", "cart", []string{"Sieu Thi", "Cua Hang"}},
	{"gas_station", "Fuel stations", "fuel", []string{"Tram Xang", "Petrol"}},
}

var streets = []string{
	"Pho Hue", "Hang Bai", "Tran Hung Dao", "Ly Thuong Kiet", "Ba Trieu",
	"Nguyen Trai", "Giai Phong", "Lang", "Cau Giay", "Kim Ma",
	"Doi Can", "Thuy Khue", "Lac Long Quan", "Xuan Thuy", "Le Duan",
}

func main() {
	schemaPath := flag.String("schema", "", "optional path to a schema file applied before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if *schemaPath != "" {
		schema, err := os.ReadFile(*schemaPath)
		if err != nil {
			log.Fatal("Failed to read schema file", zap.String("path", *schemaPath), zap.Error(err))
		}
		if _, err := db.ExecContext(ctx, string(schema)); err != nil {
			log.Fatal("Failed to apply schema", zap.Error(err))
		}
		log.Info("Schema applied", zap.String("path", *schemaPath))
	}

	divisionRepo := postgres.NewDivisionRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	userRepo := postgres.NewUserRepository(db)

	rng := rand.New(rand.NewSource(randomSeed))

	wards, districts, err := seedDivisions(ctx, divisionRepo, log)
	if err != nil {
		log.Fatal("Failed to seed divisions", zap.Error(err))
	}

	typeIDs, err := seedServiceTypes(ctx, serviceRepo, log)
	if err != nil {
		log.Fatal("Failed to seed service types", zap.Error(err))
	}

	if err := seedServices(ctx, serviceRepo, rng, wards, districts, typeIDs, log); err != nil {
		log.Fatal("Failed to seed services", zap.Error(err))
	}

	if err := seedRootUser(ctx, userRepo, log); err != nil {
		log.Fatal("Failed to seed root user", zap.Error(err))
	}

	log.Info("Seeding finished")
}

// seedDivisions inserts the Hanoi hierarchy: one province, its districts and
// their wards. Returns the ward rows and a ward-to-district index for
// composing service address components.
func seedDivisions(ctx context.Context, repo repository.DivisionRepository, log *zap.Logger) ([]*domain.AdministrativeDivision, map[int64]*domain.AdministrativeDivision, error) {
	provinceLat, provinceLng := originLat, originLng
	province := &domain.AdministrativeDivision{
		Name:        "Hanoi",
		Type:        "province",
		Level:       1,
		CountryCode: "VN",
		Latitude:    &provinceLat,
		Longitude:   &provinceLng,
	}
	if err := repo.Create(ctx, province); err != nil {
		return nil, nil, err
	}

	wards := []*domain.AdministrativeDivision{}
	wardDistrict := map[int64]*domain.AdministrativeDivision{}

	for i := range hanoiDistricts {
		d := hanoiDistricts[i]
		district := &domain.AdministrativeDivision{
			Name:        d.name,
			Type:        "district",
			Level:       2,
			ParentID:    &province.ID,
			CountryCode: "VN",
			Latitude:    &d.lat,
			Longitude:   &d.lng,
		}
		if err := repo.Create(ctx, district); err != nil {
			return nil, nil, err
		}

		for _, w := range d.wards {
			ward := &domain.AdministrativeDivision{
				Name:        w.name,
				Type:        "ward",
				Level:       3,
				ParentID:    &district.ID,
				CountryCode: "VN",
			}
			if err := repo.Create(ctx, ward); err != nil {
				return nil, nil, err
			}
			wards = append(wards, ward)
			wardDistrict[ward.ID] = district
		}
	}

	log.Info("Divisions seeded",
		zap.Int("districts", len(hanoiDistricts)),
		zap.Int("wards", len(wards)),
	)
	return wards, wardDistrict, nil
}

func seedServiceTypes(ctx context.Context, repo repository.ServiceRepository, log *zap.Logger) (map[string]int64, error) {
	ids := make(map[string]int64, len(serviceTypes))
	for i := range serviceTypes {
		t := serviceTypes[i]
		row := &domain.ServiceType{
			Name:        t.name,
			Description: &t.description,
			Icon:        &t.icon,
		}
		if err := repo.CreateType(ctx, row); err != nil {
			return nil, err
		}
		ids[t.name] = row.ID
	}

	log.Info("Service types seeded", zap.Int("count", len(ids)))
	return ids, nil
}

func seedServices(
	ctx context.Context,
	repo repository.ServiceRepository,
	rng *rand.Rand,
	wards []*domain.AdministrativeDivision,
	wardDistrict map[int64]*domain.AdministrativeDivision,
	typeIDs map[string]int64,
	log *zap.Logger,
) error {
	for i := 0; i < serviceCount; i++ {
		t := serviceTypes[rng.Intn(len(serviceTypes))]
		ward := wards[rng.Intn(len(wards))]
		district := wardDistrict[ward.ID]

		lat, lng := randomPoint(rng, originLat, originLng, spreadKm)
		street := fmt.Sprintf("%d %s", 1+rng.Intn(300), streets[rng.Intn(len(streets))])
		name := fmt.Sprintf("%s %s %d", t.prefixes[rng.Intn(len(t.prefixes))], district.Name, i+1)
		phone := fmt.Sprintf("+84 24 %04d %04d", rng.Intn(10000), rng.Intn(10000))
		rating := math.Round(float64(rng.Intn(31))+20) / 10 // 2.0 .. 5.0

		components := domain.AddressComponents{
			"province": domain.DivisionRef(*district.ParentID),
			"district": domain.DivisionRef(district.ID),
			"ward":     domain.DivisionRef(ward.ID),
		}

		service := &domain.Service{
			Name:              name,
			ServiceTypeID:     typeIDs[t.name],
			StreetAddress:     street,
			AddressComponents: components,
			CountryCode:       "VN",
			Latitude:          lat,
			Longitude:         lng,
			Phone:             &phone,
			Rating:            rating,
			IsActive:          true,
		}
		if err := repo.Create(ctx, service); err != nil {
			return err
		}
	}

	log.Info("Services seeded", zap.Int("count", serviceCount))
	return nil
}

func seedRootUser(ctx context.Context, repo repository.UserRepository, log *zap.Logger) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("root-password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		Username:     "root",
		Email:        "root@service-directory.local",
		PasswordHash: string(hash),
	}
	if err := repo.Create(ctx, user); err != nil {
		return err
	}

	log.Info("Root user seeded", zap.String("email", user.Email))
	return nil
}

// randomPoint picks a uniformly distributed point within radiusKm of the
// origin. The sqrt keeps density uniform over the disk instead of clustering
// at the center.
func randomPoint(rng *rand.Rand, lat, lng, radiusKm float64) (float64, float64) {
	distKm := radiusKm * math.Sqrt(rng.Float64())
	bearing := rng.Float64() * 2 * math.Pi

	dLat := (distKm / 6371.0) * (180 / math.Pi)
	dLng := dLat / math.Cos(lat*math.Pi/180)

	return lat + dLat*math.Cos(bearing), lng + dLng*math.Sin(bearing)
}
