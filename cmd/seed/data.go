package main

import "findmygym/internal/domain"

type gymSeed struct {
	Name        string
	Slug        string
	Description string
	Address     string
	Lat, Lng    float64
	Phone       string
	Website     string
	PriceRange  domain.PriceRange
	Type        domain.GymType
	ImageURL    string
}

var gymSeeds = []gymSeed{
	{
		Name: "Iron Paradise Fitness", Slug: "iron-paradise-fitness",
		Description: "Premium bodybuilding and strength training facility with state-of-the-art equipment.",
		Address: "123 MG Road, Bangalore", Lat: 12.9716, Lng: 77.5946,
		Phone: "+91-9876543210", Website: "https://ironparadise.com",
		PriceRange: domain.PricePremium, Type: domain.GymCommercial,
		ImageURL: "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=800",
	},
	{
		Name: "FlexZone CrossFit", Slug: "flexzone-crossfit",
		Description: "High-intensity CrossFit training with certified coaches and community vibes.",
		Address: "45 Koramangala 4th Block, Bangalore", Lat: 12.9352, Lng: 77.6245,
		Phone: "+91-9876543211", Website: "https://flexzonecf.com",
		PriceRange: domain.PricePremium, Type: domain.GymCrossfit,
		ImageURL: "https://images.unsplash.com/photo-1571902943202-507ec2618e8f?w=800",
	},
	{
		Name: "Zen Yoga Studio", Slug: "zen-yoga-studio",
		Description: "Peaceful yoga studio offering Hatha, Vinyasa, and Meditation classes.",
		Address: "78 Indiranagar, Bangalore", Lat: 12.9784, Lng: 77.6408,
		Phone: "+91-9876543212", Website: "https://zenyoga.in",
		PriceRange: domain.PriceMid, Type: domain.GymYoga,
		ImageURL: "https://images.unsplash.com/photo-1545205597-3d9d02c29597?w=800",
	},
	{
		Name: "FitBudget Gym", Slug: "fitbudget-gym",
		Description: "Affordable gym with all essential equipment. Great value for money.",
		Address: "12 BTM Layout, Bangalore", Lat: 12.9166, Lng: 77.6101,
		Phone: "+91-9876543213", Website: "",
		PriceRange: domain.PriceBudget, Type: domain.GymBudget,
		ImageURL: "https://images.unsplash.com/photo-1558611848-73f7eb4001a1?w=800",
	},
	{
		Name: "She Fitness - Women Only", Slug: "she-fitness-women-only",
		Description: "Exclusive women-only gym with personal trainers, group classes, and a safe space.",
		Address: "56 HSR Layout, Bangalore", Lat: 12.9121, Lng: 77.6446,
		Phone: "+91-9876543214", Website: "https://shefitness.in",
		PriceRange: domain.PriceMid, Type: domain.GymWomenOnly,
		ImageURL: "https://images.unsplash.com/photo-1518611012118-696072aa579a?w=800",
	},
	{
		Name: "24/7 Fitness Hub", Slug: "247-fitness-hub",
		Description: "Round-the-clock gym access with smart card entry and CCTV monitoring.",
		Address: "89 Whitefield, Bangalore", Lat: 12.9698, Lng: 77.7500,
		Phone: "+91-9876543215", Website: "https://247fitnesshub.com",
		PriceRange: domain.PriceMid, Type: domain.Gym24x7,
		ImageURL: "https://images.unsplash.com/photo-1540497077202-7c8a3999166f?w=800",
	},
	{
		Name: "PowerLift Arena", Slug: "powerlift-arena",
		Description: "Dedicated powerlifting and Olympic weightlifting facility.",
		Address: "34 JP Nagar, Bangalore", Lat: 12.9063, Lng: 77.5857,
		Phone: "+91-9876543216", Website: "https://powerliftarena.com",
		PriceRange: domain.PricePremium, Type: domain.GymCommercial,
		ImageURL: "https://images.unsplash.com/photo-1526506118085-60ce8714f8c5?w=800",
	},
	{
		Name: "AquaFit Swimming & Gym", Slug: "aquafit-swimming-gym",
		Description: "Swimming pool with gym facilities, aqua aerobics, and personal training.",
		Address: "67 Jayanagar, Bangalore", Lat: 12.9308, Lng: 77.5838,
		Phone: "+91-9876543217", Website: "https://aquafit.in",
		PriceRange: domain.PricePremium, Type: domain.GymCommercial,
		ImageURL: "https://images.unsplash.com/photo-1576013551627-0cc20b96c2a7?w=800",
	},
	{
		Name: "Urban Fitness Co.", Slug: "urban-fitness-co",
		Description: "Modern fitness center with functional training, cardio zone, and smoothie bar.",
		Address: "101 Electronic City, Bangalore", Lat: 12.8456, Lng: 77.6603,
		Phone: "+91-9876543218", Website: "https://urbanfitnessco.com",
		PriceRange: domain.PriceMid, Type: domain.GymCommercial,
		ImageURL: "https://images.unsplash.com/photo-1593079831268-3381b0db4a77?w=800",
	},
	{
		Name: "MuscleFactory", Slug: "musclefactory",
		Description: "Old-school bodybuilding gym with heavy iron, no frills, just results.",
		Address: "22 Marathahalli, Bangalore", Lat: 12.9591, Lng: 77.6974,
		Phone: "+91-9876543219", Website: "",
		PriceRange: domain.PriceBudget, Type: domain.GymCommercial,
		ImageURL: "https://images.unsplash.com/photo-1583454110551-21f2fa2afe61?w=800",
	},
	{
		Name: "Mindful Movement Studio", Slug: "mindful-movement-studio",
		Description: "Pilates, barre, and mindfulness-focused movement classes.",
		Address: "88 Lavelle Road, Bangalore", Lat: 12.9716, Lng: 77.5993,
		Phone: "+91-9876543220", Website: "https://mindfulmovement.in",
		PriceRange: domain.PricePremium, Type: domain.GymYoga,
		ImageURL: "https://images.unsplash.com/photo-1518609878373-06d740f60d8b?w=800",
	},
	{
		Name: "CrossFit Inferno", Slug: "crossfit-inferno",
		Description: "Intense CrossFit box with competition-level programming and community WODs.",
		Address: "15 Sarjapur Road, Bangalore", Lat: 12.9107, Lng: 77.6871,
		Phone: "+91-9876543221", Website: "https://cfinferno.com",
		PriceRange: domain.PricePremium, Type: domain.GymCrossfit,
		ImageURL: "https://images.unsplash.com/photo-1526401485004-46910ecc8e51?w=800",
	},
	{
		Name: "FitFirst Gym", Slug: "fitfirst-gym",
		Description: "Community gym with friendly staff, clean facilities, and affordable plans.",
		Address: "44 Yelahanka, Bangalore", Lat: 13.1005, Lng: 77.5963,
		Phone: "+91-9876543222", Website: "",
		PriceRange: domain.PriceBudget, Type: domain.GymBudget,
		ImageURL: "https://images.unsplash.com/photo-1570829460005-c840387bb1ca?w=800",
	},
	{
		Name: "Strength & Soul", Slug: "strength-and-soul",
		Description: "Holistic fitness combining strength training with yoga and meditation.",
		Address: "72 Rajajinagar, Bangalore", Lat: 12.9883, Lng: 77.5533,
		Phone: "+91-9876543223", Website: "https://strengthandsoul.com",
		PriceRange: domain.PriceMid, Type: domain.GymCommercial,
		ImageURL: "https://images.unsplash.com/photo-1574680096145-d05b474e2155?w=800",
	},
	{
		Name: "Rapid Fitness 24x7", Slug: "rapid-fitness-247",
		Description: "Automated 24/7 gym with app-based access, modern machines, and AI tracking.",
		Address: "99 Hebbal, Bangalore", Lat: 13.0358, Lng: 77.5970,
		Phone: "+91-9876543224", Website: "https://rapidfitness.in",
		PriceRange: domain.PriceMid, Type: domain.Gym24x7,
		ImageURL: "https://images.unsplash.com/photo-1534367507873-d2d7e24c797f?w=800",
	},
	{
		Name: "Peak Performance Center", Slug: "peak-performance-center",
		Description: "Sports performance training center with athletics coaching and rehab services.",
		Address: "31 Malleshwaram, Bangalore", Lat: 13.0035, Lng: 77.5647,
		Phone: "+91-9876543225", Website: "https://peakperformance.in",
		PriceRange: domain.PricePremium, Type: domain.GymCommercial,
		ImageURL: "https://images.unsplash.com/photo-1576678927484-cc907957088c?w=800",
	},
	{
		Name: "Curves Fitness - Ladies", Slug: "curves-fitness-ladies",
		Description: "Women-focused circuit training gym with supportive coaches.",
		Address: "53 Banashankari, Bangalore", Lat: 12.9255, Lng: 77.5468,
		Phone: "+91-9876543226", Website: "https://curvesfitness.in",
		PriceRange: domain.PriceMid, Type: domain.GymWomenOnly,
		ImageURL: "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=800",
	},
	{
		Name: "GymBro Arena", Slug: "gymbro-arena",
		Description: "Massive training floor with every machine imaginable. Bro splits welcome.",
		Address: "66 Bellandur, Bangalore", Lat: 12.9260, Lng: 77.6762,
		Phone: "+91-9876543227", Website: "https://gymbroarena.com",
		PriceRange: domain.PriceMid, Type: domain.GymCommercial,
		ImageURL: "https://images.unsplash.com/photo-1605296867424-35fc25c9212a?w=800",
	},
	{
		Name: "Sunrise Yoga Shala", Slug: "sunrise-yoga-shala",
		Description: "Traditional Ashtanga and Mysore-style yoga in a serene setting.",
		Address: "11 Sadashivanagar, Bangalore", Lat: 13.0067, Lng: 77.5800,
		Phone: "+91-9876543228", Website: "https://sunriseyoga.in",
		PriceRange: domain.PriceBudget, Type: domain.GymYoga,
		ImageURL: "https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=800",
	},
	{
		Name: "Titan Strength Gym", Slug: "titan-strength-gym",
		Description: "Serious strength training facility with platforms, racks, and competition gear.",
		Address: "40 Vijayanagar, Bangalore", Lat: 12.9719, Lng: 77.5350,
		Phone: "+91-9876543229", Website: "https://titanstrength.com",
		PriceRange: domain.PriceMid, Type: domain.GymCommercial,
		ImageURL: "https://images.unsplash.com/photo-1581009146145-b5ef050c2e1e?w=800",
	},
}

type amenitySeed struct{ Name, Icon string }

var amenityPool = []amenitySeed{
	{"Swimming Pool", "waves"},
	{"Sauna", "thermometer"},
	{"Steam Room", "cloud"},
	{"Parking", "car"},
	{"Wi-Fi", "wifi"},
	{"Locker Room", "lock"},
	{"Showers", "shower-head"},
	{"Air Conditioning", "air-vent"},
	{"Personal Trainer", "user-check"},
	{"Group Classes", "users"},
	{"Cardio Zone", "heart-pulse"},
	{"Free Weights", "dumbbell"},
	{"Functional Training", "zap"},
	{"Smoothie Bar", "cup-soda"},
	{"Towel Service", "shirt"},
	{"Body Composition Analysis", "scan"},
	{"Physiotherapy", "stethoscope"},
	{"Kids Play Area", "baby"},
}

type classSeed struct {
	Name     string
	Category string
	Minutes  int
}

var classTypes = []classSeed{
	{"Yoga Flow", "yoga", 60},
	{"HIIT Blast", "cardio", 45},
	{"Zumba", "dance", 60},
	{"Spin Class", "cardio", 45},
	{"Boxing Fit", "martial_arts", 60},
	{"Pilates Core", "yoga", 50},
	{"Body Pump", "strength", 55},
	{"Kickboxing", "martial_arts", 60},
	{"Power Yoga", "yoga", 60},
	{"Aqua Aerobics", "cardio", 45},
}

var instructors = []string{
	"Priya Sharma", "Rahul Verma", "Anita Singh", "Vikram Patel",
	"Deepa Nair", "Arjun Kumar", "Meera Reddy", "Karthik Iyer",
	"Sneha Gupta", "Rohan Das",
}

var reviewTexts = []string{
	"Excellent gym with great equipment and friendly staff. Highly recommended!",
	"Good value for money. The trainers are knowledgeable and helpful.",
	"Clean facilities and well-maintained equipment. Love the vibe here.",
	"Best gym in the area. The group classes are amazing!",
	"Decent gym but can get crowded during peak hours.",
	"Great variety of equipment. Could improve the ventilation though.",
	"Friendly atmosphere, perfect for beginners. Staff is very supportive.",
	"Top-notch facilities. The swimming pool is a big plus.",
	"Affordable and well-equipped. My go-to gym for the past year.",
	"Amazing CrossFit box! The community here keeps you motivated.",
	"Nice yoga studio with experienced instructors. Very calming environment.",
	"Good gym overall. Parking can be an issue sometimes.",
	"Love the 24/7 access. Perfect for my irregular schedule.",
	"The personal trainers here really know their stuff. Great results!",
	"Solid gym with everything you need. No complaints!",
	"Wonderful experience! The ambiance is perfect for workouts.",
	"Could be better. Equipment is a bit dated but functional.",
	"Premium gym with premium service. Worth every penny.",
	"Great for powerlifting. Has all the specialty equipment you need.",
	"Excellent women-only gym. Feels very safe and comfortable.",
}

type userSeed struct {
	Name, Email, FitnessGoals, PreferredWorkouts, BudgetRange string
}

var userSeeds = []userSeed{
	{"Aarav Patel", "aarav@example.com", `["muscle_gain","strength"]`, `["weightlifting","crossfit"]`, "high"},
	{"Ishita Sharma", "ishita@example.com", `["weight_loss","flexibility"]`, `["yoga","cardio"]`, "medium"},
	{"Rohan Gupta", "rohan@example.com", `["general_fitness"]`, `["mixed"]`, "low"},
	{"Sneha Kumar", "sneha@example.com", `["toning","endurance"]`, `["hiit","dance"]`, "medium"},
	{"Vikram Singh", "vikram@example.com", `["powerlifting"]`, `["powerlifting","strongman"]`, "high"},
	{"Priya Nair", "priya@example.com", `["weight_loss","mental_health"]`, `["yoga","pilates"]`, "medium"},
	{"Arjun Reddy", "arjun@example.com", `["muscle_gain"]`, `["bodybuilding"]`, "low"},
	{"Meera Das", "meera@example.com", `["general_fitness","social"]`, `["group_classes","zumba"]`, "medium"},
}

var stockPhotos = []string{
	"https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=800",
	"https://images.unsplash.com/photo-1571902943202-507ec2618e8f?w=800",
	"https://images.unsplash.com/photo-1540497077202-7c8a3999166f?w=800",
	"https://images.unsplash.com/photo-1593079831268-3381b0db4a77?w=800",
}
